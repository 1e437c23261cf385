package entity

// KVEntry is a plain string key-value row, the server-side stand-in for
// the kiosk's local storage.
type KVEntry struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}
