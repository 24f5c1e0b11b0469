package crypto

// testParams keeps the real envelope layout but makes Argon2id cheap enough
// to run hundreds of derivations per test.
func testParams() Params {
	p := DefaultParams()
	p.Time = 1
	p.MemoryKiB = 64
	p.Threads = 1
	return p
}

func newTestCodec(p Params) *envelopeCodec {
	c, err := NewCodec(p)
	if err != nil {
		panic(err)
	}
	return c.(*envelopeCodec)
}
