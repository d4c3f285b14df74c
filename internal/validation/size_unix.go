//go:build unix

package validation

import "golang.org/x/sys/unix"

func statSize(path string) (int64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return int64(st.Size), nil
}
