package loot

// Permission is what a viewer may do with the shared part of a loot.
type Permission uint8

const (
	PermissionNone Permission = iota
	PermissionGroup
	PermissionAll
	PermissionMaster
)

func (p Permission) String() string {
	switch p {
	case PermissionNone:
		return "none"
	case PermissionGroup:
		return "group"
	case PermissionAll:
		return "all"
	case PermissionMaster:
		return "master"
	default:
		return "unknown"
	}
}

// SlotType tells the client what it may do with a row.
type SlotType uint8

const (
	SlotTakeable     SlotType = 0
	SlotViewOnly     SlotType = 1
	SlotMasterSelect SlotType = 2
)

// SlotRow is one visible loot slot.
type SlotRow struct {
	Slot             uint8
	ItemID           int32
	Count            int32
	DisplayInfoID    int32
	RandomSuffix     int32
	RandomPropertyID int32
	Type             SlotType
}

// View projects a loot for one viewer. It never mutates the loot: lists
// must have been computed with PrepareViewer beforehand.
type View struct {
	Loot       *Loot
	Viewer     Viewer
	Permission Permission
}

// Gold returns the money shown to the viewer. Every permission except
// None sees the gold, not only the looter.
func (v View) Gold() uint32 {
	if v.Permission == PermissionNone {
		return 0
	}
	return v.Loot.gold
}

// Rows returns the visible rows in wire order: plain items, then the
// viewer's quest, free-for-all and conditional lists.
func (v View) Rows() []SlotRow {
	l := v.Loot
	var rows []SlotRow

	switch v.Permission {
	case PermissionGroup:
		for i := range l.items {
			it := &l.items[i]
			if !l.sharedVisible(it, v.Viewer) {
				continue
			}
			typ := SlotViewOnly
			if it.blocked || it.underThreshold {
				typ = SlotTakeable
			}
			rows = append(rows, l.row(uint8(i), it, typ))
		}
	case PermissionAll, PermissionMaster:
		typ := SlotTakeable
		if v.Permission == PermissionMaster {
			typ = SlotMasterSelect
		}
		for i := range l.items {
			it := &l.items[i]
			if l.sharedVisible(it, v.Viewer) {
				rows = append(rows, l.row(uint8(i), it, typ))
			}
		}
	default:
		return nil
	}

	id := v.Viewer.ObjectID()

	for j, ref := range l.questLists[id] {
		it := &l.questItems[ref.Index]
		if !ref.Looted && !it.looted {
			rows = append(rows, l.row(uint8(len(l.items)+j), it, SlotTakeable))
		}
	}
	for _, ref := range l.ffaLists[id] {
		it := &l.items[ref.Index]
		if !ref.Looted && !it.looted {
			rows = append(rows, l.row(ref.Index, it, SlotTakeable))
		}
	}
	for _, ref := range l.condLists[id] {
		it := &l.items[ref.Index]
		if !ref.Looted && !it.looted {
			rows = append(rows, l.row(ref.Index, it, SlotTakeable))
		}
	}

	return rows
}

// sharedVisible selects plain items shown through the permission:
// not looted, not free-for-all, not conditional and allowed for the viewer.
func (l *Loot) sharedVisible(it *Item, v Viewer) bool {
	return !it.looted && !it.FreeForAll && it.ConditionID == 0 && l.allowedFor(it, v)
}

func (l *Loot) row(slot uint8, it *Item, typ SlotType) SlotRow {
	r := SlotRow{
		Slot:             slot,
		ItemID:           it.ItemID,
		Count:            it.Count,
		RandomSuffix:     it.RandomSuffix,
		RandomPropertyID: it.RandomPropertyID,
		Type:             typ,
	}
	if info, ok := l.tables.Items.ItemInfo(it.ItemID); ok {
		r.DisplayInfoID = info.DisplayInfoID
	}
	return r
}
