package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr bool
	}{
		{name: "defaults", mutate: func(p *Params) {}},
		{name: "aes-128 key", mutate: func(p *Params) { p.KeyLen = 16 }},
		{name: "short tag with standard nonce", mutate: func(p *Params) { p.TagLen = 12 }},
		{name: "long nonce with full tag", mutate: func(p *Params) { p.NonceLen = 16 }},
		{name: "zero time", mutate: func(p *Params) { p.Time = 0 }, wantErr: true},
		{name: "zero memory", mutate: func(p *Params) { p.MemoryKiB = 0 }, wantErr: true},
		{name: "zero threads", mutate: func(p *Params) { p.Threads = 0 }, wantErr: true},
		{name: "non-aes key length", mutate: func(p *Params) { p.KeyLen = 20 }, wantErr: true},
		{name: "short salt", mutate: func(p *Params) { p.SaltLen = 4 }, wantErr: true},
		{name: "short nonce", mutate: func(p *Params) { p.NonceLen = 8 }, wantErr: true},
		{name: "tag too short", mutate: func(p *Params) { p.TagLen = 8 }, wantErr: true},
		{name: "tag too long", mutate: func(p *Params) { p.TagLen = 17 }, wantErr: true},
		{name: "long nonce with short tag", mutate: func(p *Params) { p.NonceLen = 16; p.TagLen = 12 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, uint32(32), p.KeyLen)
	assert.Equal(t, 32, p.SaltLen)
	assert.Equal(t, 12, p.NonceLen)
	assert.Equal(t, 16, p.TagLen)
	assert.Equal(t, 44, p.headerLen())
}
