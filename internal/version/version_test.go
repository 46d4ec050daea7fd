/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet(t *testing.T) {
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})

	tests := []struct {
		name    string
		version string
		commit  string
		tag     string
		dirty   string
		want    string
	}{
		{name: "ldflags version", version: "v1.2.0", commit: "unknown", tag: "unknown", want: "v1.2.0"},
		{name: "tag and commit", version: "dev", commit: "0123456789abcdef", tag: "v1.1.0", want: "v1.1.0-0123456"},
		{name: "dirty tree", version: "dev", commit: "0123456789abcdef", tag: "v1.1.0", dirty: "dirty", want: "v1.1.0-0123456-dirty"},
		{name: "tag already names commit", version: "dev", commit: "0123456789", tag: "v1.1.0-0123456", want: "v1.1.0-0123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, GitTag, GitDirty = tt.version, tt.commit, tt.tag, tt.dirty
			if got := Get(); got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	saved := []string{Version, GitCommit, GitDirty}
	t.Cleanup(func() {
		Version, GitCommit, GitDirty = saved[0], saved[1], saved[2]
	})
	Version, GitCommit, GitDirty = "v2.0.0", "abc1234", "dirty"

	info := Info()
	if info.Version != "v2.0.0" || !info.Dirty || info.GitCommit != "abc1234" {
		t.Errorf("Info() = %+v", info)
	}
	if got := Full(); got != "v2.0.0 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
}
