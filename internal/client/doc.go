// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the opened vault storage for the lifetime of the process, runs the
// terminal shell on top of it and releases the storage when the shell exits.
package client
