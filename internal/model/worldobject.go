package model

import "sync"

// WorldObject: базовый объект мира: ObjectID, имя и текущая зона.
type WorldObject struct {
	objectID uint32
	name     string
	zoneID   int32

	mu sync.RWMutex
}

// NewWorldObject создаёт новый объект в игровом мире.
func NewWorldObject(objectID uint32, name string, zoneID int32) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		zoneID:   zoneID,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name возвращает имя объекта.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// SetName устанавливает имя объекта.
func (w *WorldObject) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

// ZoneID returns the top-level zone the object is in.
func (w *WorldObject) ZoneID() int32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.zoneID
}

// SetZoneID moves the object to another zone.
func (w *WorldObject) SetZoneID(zoneID int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.zoneID = zoneID
}
