package blend

// Mode is a Porter-Duff compositing operator.
type Mode uint8

const (
	// SourceOver draws the source on top of the destination: S + D*(1-Sa).
	SourceOver Mode = iota
	// Source replaces the destination with the source inside the coverage.
	Source
)

func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case Source:
		return "Source"
	default:
		return "Unknown"
	}
}

// Scale multiplies every channel of p by a/255.
func Scale(p uint32, a uint32) uint32 {
	switch a {
	case 0:
		return 0
	case 255:
		return p
	}
	pa, pr, pg, pb := Unpack(p)
	return Pack(mulDiv255(pa, a), mulDiv255(pr, a), mulDiv255(pg, a), mulDiv255(pb, a))
}

// Over composites src over dst.
// Channels are clamped so a source whose color exceeds its alpha cannot wrap.
func Over(src, dst uint32) uint32 {
	sa, sr, sg, sb := Unpack(src)
	switch sa {
	case 255:
		return src
	case 0:
		if src == 0 {
			return dst
		}
	}
	inv := 255 - sa
	da, dr, dg, db := Unpack(dst)
	return Pack(
		addClamp(sa, mulDiv255(da, inv)),
		addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
	)
}

// Lerp replaces dst with src weighted by coverage cov: S*c + D*(1-c).
func Lerp(src, dst uint32, cov uint32) uint32 {
	switch cov {
	case 0:
		return dst
	case 255:
		return src
	}
	inv := 255 - cov
	sa, sr, sg, sb := Unpack(src)
	da, dr, dg, db := Unpack(dst)
	return Pack(
		addClamp(mulDiv255(sa, cov), mulDiv255(da, inv)),
		addClamp(mulDiv255(sr, cov), mulDiv255(dr, inv)),
		addClamp(mulDiv255(sg, cov), mulDiv255(dg, inv)),
		addClamp(mulDiv255(sb, cov), mulDiv255(db, inv)),
	)
}

// Composite applies mode to src, dst with the given coverage.
func Composite(mode Mode, src, dst uint32, cov uint32) uint32 {
	if mode == Source {
		return Lerp(src, dst, cov)
	}
	return Over(Scale(src, cov), dst)
}
