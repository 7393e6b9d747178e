package saves

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Purger deletes confirmed save folders under Dir. The confirmation prompt
// and the filesystem calls are injected so the deletion sequence can be
// tested without a real directory or a real user.
type Purger struct {
	Dir        string
	Confirm    func(candidates []SaveInfo) string
	ReadDir    func(path string) ([]fs.DirEntry, error)
	RemoveFile func(path string) error
	RemoveDir  func(path string) error
}

// NewPurger returns a Purger bound to dir that prompts on stdin/stdout and
// deletes through the os package.
func NewPurger(dir string) *Purger {
	return &Purger{
		Dir:        dir,
		Confirm:    promptConfirm,
		ReadDir:    os.ReadDir,
		RemoveFile: os.Remove,
		RemoveDir:  os.Remove,
	}
}

// Run asks for confirmation and deletes every candidate folder in order.
// Any answer other than "y" (case-insensitive) aborts with no deletions and
// no error. Deletion is fail-fast: the first folder whose listing or
// removal fails stops the batch, and folders already removed stay removed.
func (p *Purger) Run(candidates []SaveInfo) error {
	answer := p.Confirm(candidates)
	if !strings.EqualFold(answer, "y") {
		log.Info().Msg("User did not confirm delete")
		return nil
	}

	for _, candidate := range candidates {
		if err := p.removeFolder(filepath.Join(p.Dir, candidate.FolderName)); err != nil {
			return err
		}
		log.Debug().Str("folder", candidate.FolderName).Msg("save folder removed")
	}
	return nil
}

// removeFolder removes every file directly inside path, then the now-empty
// folder itself.
func (p *Purger) removeFolder(path string) error {
	children, err := p.ReadDir(path)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrReadDirectory, path), err)
	}

	for _, child := range children {
		childPath := filepath.Join(path, child.Name())
		if err := p.RemoveFile(childPath); err != nil {
			return errors.Join(fmt.Errorf("%w: %s", ErrDelete, childPath), err)
		}
	}

	if err := p.RemoveDir(path); err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrDelete, path), err)
	}
	return nil
}

// promptConfirm prints the numbered candidate list, prompts for a y/n
// answer and returns the trimmed line it read. A failed read counts as an
// empty answer, which aborts the delete.
func promptConfirm(candidates []SaveInfo) string {
	fmt.Println("****")
	for i, candidate := range candidates {
		fmt.Printf("\t%d | %s\n", i+1, candidate.FolderName)
	}
	fmt.Println("****")
	fmt.Print("Delete the above files? y/n: ")

	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	fmt.Printf("User input read: %s\n", line)
	return line
}
