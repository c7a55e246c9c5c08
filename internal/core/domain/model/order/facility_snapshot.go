package order

// FacilitySnapshot freezes the drop-off point details onto a locker order at
// ingestion time. The snapshot survives later edits or deletion of the
// facility record, so labels and courier instructions stay stable.
type FacilitySnapshot struct {
	ID      int64
	Name    string
	Address string
	Phone   string
}
