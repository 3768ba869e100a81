// SPDX-License-Identifier: MPL-2.0

package transform

// ByDate prefixes name with a "YYYY-MM-DD/" directory derived from the
// file's last-modification time in the local timezone, filing it into a
// per-day bucket. A failed timestamp lookup returns a LookupError along
// with the unchanged name; the caller recovers it at the per-file boundary.
func ByDate(tc *Context, name string) (string, error) {
	mtime, err := tc.ModTime(name)
	if err != nil {
		return name, &LookupError{Path: name, Err: err}
	}
	return mtime.Format("2006-01-02") + "/" + name, nil
}
