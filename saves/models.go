package saves

// Category describes the kind of save a folder holds.
type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryQuick        Category = "quick"
	CategoryAuto         Category = "auto"
	CategoryUnrecognized Category = "unrecognized"
)

// SaveInfo describes one save folder, parsed from its name.
type SaveInfo struct {
	FolderName    string   // original folder name, unique within a listing
	CharacterName string   // prefix of FolderName before the first '-'
	Category      Category // substring match on the folder name
	SaveNumber    uint16   // last '_'-delimited token of FolderName
}

// SaveGroup holds one character's saves split by category. Unrecognized
// saves are never inserted into a group.
type SaveGroup struct {
	QuickSaves []SaveInfo
	AutoSaves  []SaveInfo
}

// GroupTable maps a character name to that character's saves.
type GroupTable map[string]*SaveGroup
