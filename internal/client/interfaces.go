// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Shell is the interactive front end driven by the App. It returns when the
// user quits.
type Shell interface {
	Run(ctx context.Context) error
}
