package saves

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct{ name string }

func (f fakeEntry) Name() string               { return f.name }
func (f fakeEntry) IsDir() bool                { return false }
func (f fakeEntry) Type() fs.FileMode          { return 0 }
func (f fakeEntry) Info() (fs.FileInfo, error) { return nil, nil }

// recordingPurger captures every filesystem call instead of touching disk.
// Each fake folder contains one child file named "save.dat".
func recordingPurger(answer string) (*Purger, *[]string) {
	calls := &[]string{}
	p := &Purger{
		Dir:     "/saves",
		Confirm: func([]SaveInfo) string { return answer },
		ReadDir: func(path string) ([]fs.DirEntry, error) {
			*calls = append(*calls, "readdir "+path)
			return []fs.DirEntry{fakeEntry{name: "save.dat"}}, nil
		},
		RemoveFile: func(path string) error {
			*calls = append(*calls, "removefile "+path)
			return nil
		},
		RemoveDir: func(path string) error {
			*calls = append(*calls, "removedir "+path)
			return nil
		},
	}
	return p, calls
}

func TestPurgerRunNotConfirmed(t *testing.T) {
	candidates := []SaveInfo{testSave("First Last", CategoryQuick, 1)}

	for _, answer := range []string{"n", "Yes", "", "q"} {
		p, calls := recordingPurger(answer)
		err := p.Run(candidates)

		require.NoError(t, err, "answer %q", answer)
		assert.Empty(t, *calls, "answer %q must not delete anything", answer)
	}
}

func TestPurgerRunConfirmedCaseInsensitive(t *testing.T) {
	candidates := []SaveInfo{testSave("First Last", CategoryQuick, 1)}

	for _, answer := range []string{"y", "Y"} {
		p, calls := recordingPurger(answer)
		require.NoError(t, p.Run(candidates), "answer %q", answer)
		assert.NotEmpty(t, *calls, "answer %q", answer)
	}
}

func TestPurgerRunDeletesChildrenThenFolder(t *testing.T) {
	first := testSave("First Last", CategoryQuick, 2)
	second := testSave("First Last", CategoryQuick, 1)

	p, calls := recordingPurger("y")
	require.NoError(t, p.Run([]SaveInfo{first, second}))

	firstPath := filepath.Join("/saves", first.FolderName)
	secondPath := filepath.Join("/saves", second.FolderName)
	assert.Equal(t, []string{
		"readdir " + firstPath,
		"removefile " + filepath.Join(firstPath, "save.dat"),
		"removedir " + firstPath,
		"readdir " + secondPath,
		"removefile " + filepath.Join(secondPath, "save.dat"),
		"removedir " + secondPath,
	}, *calls)
}

func TestPurgerRunAbortsBatchOnListingFailure(t *testing.T) {
	first := testSave("First Last", CategoryQuick, 3)
	second := testSave("First Last", CategoryQuick, 2)
	third := testSave("First Last", CategoryQuick, 1)

	p, calls := recordingPurger("y")
	badPath := filepath.Join("/saves", second.FolderName)
	inner := p.ReadDir
	p.ReadDir = func(path string) ([]fs.DirEntry, error) {
		if path == badPath {
			return nil, fmt.Errorf("permission denied")
		}
		return inner(path)
	}

	err := p.Run([]SaveInfo{first, second, third})
	require.ErrorIs(t, err, ErrReadDirectory)

	// The first folder is gone, the third was never touched.
	assert.Contains(t, *calls, "removedir "+filepath.Join("/saves", first.FolderName))
	assert.NotContains(t, *calls, "readdir "+filepath.Join("/saves", third.FolderName))
}

func TestPurgerRunSurfacesDeleteFailure(t *testing.T) {
	p, _ := recordingPurger("y")
	p.RemoveFile = func(path string) error { return fmt.Errorf("busy") }

	err := p.Run([]SaveInfo{testSave("First Last", CategoryQuick, 1)})
	assert.ErrorIs(t, err, ErrDelete)
}

func TestPurgerRunRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "Alice-1_QuickSave_3")
	doomed := filepath.Join(dir, "Alice-1_QuickSave_1")
	for _, folder := range []string{keep, doomed} {
		require.NoError(t, os.Mkdir(folder, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(folder, "save.dat"), []byte("x"), 0o644))
	}

	p := NewPurger(dir)
	p.Confirm = func([]SaveInfo) string { return "y" }

	record, err := Parse("Alice-1_QuickSave_1")
	require.NoError(t, err)
	require.NoError(t, p.Run([]SaveInfo{record}))

	_, err = os.Stat(doomed)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(keep)
	assert.NoError(t, err)
}
