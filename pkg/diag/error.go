package diag

import "golang.org/x/xerrors"

// WrapError annotates err with the context's position, preserving err as the
// wrapped cause so that errors.Is/errors.As and xerrors.As continue to see
// through to it.
func WrapError(c Context, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%s: %w", c.String(), err)
}
