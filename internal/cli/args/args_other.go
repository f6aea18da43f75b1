// --- START OF NEW FILE internal/cli/args/args_other.go ---
//go:build !windows

package args

// platformArgs returns raw unchanged: argv is already byte-exact on these hosts.
func platformArgs(raw []string) ([]string, error) {
	return append([]string(nil), raw...), nil
}

// --- END OF NEW FILE internal/cli/args/args_other.go ---
