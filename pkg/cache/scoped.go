package cache

// ScopedKeyer prefixes every key of an inner [Keyer].
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a [DefaultKeyer] when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(chainHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chainHash, opts)
}

func (k *ScopedKeyer) SmoothKey(signalHash string, opts SmoothKeyOpts) string {
	return k.prefix + k.inner.SmoothKey(signalHash, opts)
}
