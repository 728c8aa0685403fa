package entity

// OrderCounter backs the per-year order number sequence. Incremented with a
// single atomic upsert, never read-then-write.
type OrderCounter struct {
	Year    int   `gorm:"primaryKey" json:"year"`
	LastSeq int64 `json:"lastSeq"`
}
