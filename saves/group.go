package saves

import "sort"

// Group folds records into a table keyed by character name. Records keep
// their input order inside each category list. Unrecognized records are
// consumed and dropped; they never reach a group.
func Group(records []SaveInfo) GroupTable {
	table := make(GroupTable)
	for _, record := range records {
		group, ok := table[record.CharacterName]
		if !ok {
			group = &SaveGroup{}
			table[record.CharacterName] = group
		}

		switch record.Category {
		case CategoryQuick:
			group.QuickSaves = append(group.QuickSaves, record)
		case CategoryAuto:
			group.AutoSaves = append(group.AutoSaves, record)
		}
	}
	return table
}

// SortGroups orders every category list by save number, newest first.
// Saves with equal numbers keep their relative input order. The table is
// sorted in place and returned for chaining.
func SortGroups(table GroupTable) GroupTable {
	for _, group := range table {
		sortNewestFirst(group.QuickSaves)
		sortNewestFirst(group.AutoSaves)
	}
	return table
}

func sortNewestFirst(records []SaveInfo) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SaveNumber > records[j].SaveNumber
	})
}

// SelectForDeletion returns every save past the keep newest, applied per
// character and per category independently. The table must already be
// sorted by SortGroups. Within one character's contribution quick saves
// come before auto saves; order across characters follows map iteration.
func SelectForDeletion(table GroupTable, keep int) []SaveInfo {
	if keep < 0 {
		keep = 0
	}

	var candidates []SaveInfo
	for _, group := range table {
		candidates = append(candidates, pastKeep(group.QuickSaves, keep)...)
		candidates = append(candidates, pastKeep(group.AutoSaves, keep)...)
	}
	return candidates
}

func pastKeep(records []SaveInfo, keep int) []SaveInfo {
	if keep >= len(records) {
		return nil
	}
	return records[keep:]
}
