package dialect

import "path/filepath"

// Locations returns every path that may hold rules for the dialect,
// joined onto root: primary locations first, then legacy ones, each
// group in declaration order. This is pure path construction; nothing
// here touches the filesystem.
func (p Profile) Locations(root string) []string {
	out := make([]string, 0, len(p.Primary)+len(p.Legacy))
	for _, rel := range p.Primary {
		out = append(out, filepath.Join(root, filepath.FromSlash(rel)))
	}
	for _, rel := range p.Legacy {
		out = append(out, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return out
}

// PrimaryLocation returns the first primary location joined onto root.
// Serializers write there; every profile declares at least one.
func (p Profile) PrimaryLocation(root string) string {
	if len(p.Primary) == 0 {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(p.Primary[0]))
}
