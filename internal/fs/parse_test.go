package fs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoversNameAndPrefix(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantName   string
		wantPrefix string
		wantKind   Kind
	}{
		{
			name:       "regular file",
			line:       "-rw-r--r--  1 leao leao 4.0K Mar  3 12:01 notes.txt",
			wantName:   "notes.txt",
			wantPrefix: "-rw-r--r--  1 leao leao 4.0K Mar  3 12:01 ",
			wantKind:   KindRegular,
		},
		{
			name:       "directory with marker",
			line:       "drwxr-xr-x  2 leao leao 4.0K Jan 12  2024 src/",
			wantName:   "src/",
			wantPrefix: "drwxr-xr-x  2 leao leao 4.0K Jan 12  2024 ",
			wantKind:   KindDirectory,
		},
		{
			name:       "executable",
			line:       "-rwxr-xr-x 1 root root  16K Feb 29 09:30 a.out*",
			wantName:   "a.out*",
			wantPrefix: "-rwxr-xr-x 1 root root  16K Feb 29 09:30 ",
			wantKind:   KindExecutable,
		},
		{
			name:       "symlink keeps target",
			line:       "lrwxrwxrwx 1 leao leao    7 Mar  3 12:01 latest -> v1.2.3/",
			wantName:   "latest -> v1.2.3/",
			wantPrefix: "lrwxrwxrwx 1 leao leao    7 Mar  3 12:01 ",
			wantKind:   KindSymlink,
		},
		{
			name:       "name with inner spaces",
			line:       "-rw-r--r-- 1 leao leao 0 Mar  3 12:01 my  file.txt",
			wantName:   "my  file.txt",
			wantPrefix: "-rw-r--r-- 1 leao leao 0 Mar  3 12:01 ",
			wantKind:   KindRegular,
		},
		{
			name:       "tabs between fields",
			line:       "-rw-r--r--\t1\tleao\tleao\t0\tMar\t3\t12:01\t\tx",
			wantName:   "x",
			wantPrefix: "-rw-r--r--\t1\tleao\tleao\t0\tMar\t3\t12:01\t\t",
			wantKind:   KindRegular,
		},
		{
			name:       "trailing newline is removed",
			line:       "-rw-r--r-- 1 leao leao 0 Mar  3 12:01 README.md\n",
			wantName:   "README.md",
			wantPrefix: "-rw-r--r-- 1 leao leao 0 Mar  3 12:01 ",
			wantKind:   KindRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, entry.Name)
			assert.Equal(t, tt.wantPrefix, entry.Prefix)
			assert.Equal(t, tt.wantKind, entry.Kind)
			assert.Equal(t, tt.line, entry.FullLine)
			assert.Equal(t, len(entry.Prefix), strings.Index(tt.line, tt.wantName))
		})
	}
}

func TestParseRejectsShortLines(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"total 48K",
		"ls: cannot access 'x': No such file or directory",
		"-rw-r--r-- 1 leao leao 0 Mar 3",
		"-rw-r--r-- 1 leao leao 0 Mar 3 12:01",
		"-rw-r--r-- 1 leao leao 0 Mar 3 12:01   ",
	}

	for _, line := range lines {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrMalformedLine, "line %q", line)
	}
}

func TestClassifyPermissionCombinations(t *testing.T) {
	typeChars := []byte{'-', 'd', 'l', 'c'}
	for _, tc := range typeChars {
		for bits := 0; bits < 8; bits++ {
			perm := []byte(string(tc) + "rw-r--r--")
			if bits&1 != 0 {
				perm[3] = 'x'
			}
			if bits&2 != 0 {
				perm[6] = 'x'
			}
			if bits&4 != 0 {
				perm[9] = 'x'
			}

			var want Kind
			switch {
			case tc == 'd':
				want = KindDirectory
			case tc == 'l':
				want = KindSymlink
			case tc == '-' && bits != 0:
				want = KindExecutable
			default:
				want = KindRegular
			}

			line := fmt.Sprintf("%s 1 u g 0 Jan 1 00:00 name", perm)
			entry, err := Parse(line)
			require.NoError(t, err)
			assert.Equal(t, want, entry.Kind, "permissions %s", perm)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"-rwxr-xr-x 1 u g 0 Jan 1 00:00 run.sh*", "run.sh"},
		{"drwxr-xr-x 1 u g 0 Jan 1 00:00 docs/", "docs"},
		{"drwxr-xr-x 1 u g 0 Jan 1 00:00 ../", ".."},
		{"lrwxrwxrwx 1 u g 0 Jan 1 00:00 cfg -> /etc/cfg", "cfg"},
		{"lrwxrwxrwx 1 u g 0 Jan 1 00:00 broken@", "broken"},
		{"prw-r--r-- 1 u g 0 Jan 1 00:00 fifo|", "fifo"},
		{"srw-r--r-- 1 u g 0 Jan 1 00:00 sock=", "sock"},
		{"-rw-r--r-- 1 u g 0 Jan 1 00:00 plain|", "plain|"},
		{"-rwsr--r-- 1 u g 0 Jan 1 00:00 prog*", "prog"},
		{"-rw-r-sr-- 1 u g 0 Jan 1 00:00 grp*", "grp"},
		{"-rw-r--r-t 1 u g 0 Jan 1 00:00 sticky*", "sticky"},
		{"-rwSr--r-- 1 u g 0 Jan 1 00:00 star*", "star*"},
	}

	for _, tt := range tests {
		entry, err := Parse(tt.line)
		require.NoError(t, err)
		assert.Equal(t, tt.want, entry.CleanName(), tt.line)
	}
}

func TestSetuidEntryKeepsRegularKind(t *testing.T) {
	entry, err := Parse("-rwsr--r-- 1 u g 0 Jan 1 00:00 prog*")
	require.NoError(t, err)
	assert.Equal(t, KindRegular, entry.Kind)
	assert.Equal(t, "prog", entry.CleanName())
}

func TestEntryIsDir(t *testing.T) {
	assert.True(t, Entry{Name: "src/", Kind: KindDirectory}.IsDir())
	assert.True(t, Entry{Name: ParentRef, Kind: KindSymlink}.IsDir())
	assert.False(t, Entry{Name: "a.txt", Kind: KindRegular}.IsDir())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "REGULAR", KindRegular.String())
	assert.Equal(t, "DIRECTORY", KindDirectory.String())
	assert.Equal(t, "EXECUTABLE", KindExecutable.String())
	assert.Equal(t, "SYMLINK", KindSymlink.String())
}

func TestJoinPath(t *testing.T) {
	got, err := JoinPath("/tmp/work", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work/notes.txt", got)

	got, err = JoinPath("/", "etc")
	require.NoError(t, err)
	assert.Equal(t, "/etc", got)

	_, err = JoinPath("/tmp", strings.Repeat("a", MaxPathBytes))
	assert.ErrorIs(t, err, ErrPathTooLong)

	_, err = JoinPath("/tmp", "")
	assert.Error(t, err)
}
