package artifacts

// DriftItem records an object whose content no longer matches the declared
// checksum.
type DriftItem struct {
	Key              string `json:"key"`
	DeclaredChecksum string `json:"declared_checksum"`
	ActualChecksum   string `json:"actual_checksum"`
}

// Report is the outcome of auditing the bucket against the declared
// artifacts.
type Report struct {
	// Bucket is the audited bucket name.
	Bucket string `json:"bucket"`

	// Missing lists object keys declared in the database but absent from
	// the bucket. These need a re-upload; the reconciler cannot create
	// them because it does not hold the content.
	Missing []string `json:"missing"`

	// Orphans lists object keys present in the bucket but not declared.
	// These are purged on apply.
	Orphans []string `json:"orphans"`

	// Drift lists objects whose checksum differs from the declared one.
	Drift []DriftItem `json:"drift"`

	// Synced counts objects that match their declaration.
	Synced int `json:"synced"`
}

// HasFindings reports whether the audit found anything to act on.
func (r *Report) HasFindings() bool {
	return len(r.Missing) > 0 || len(r.Orphans) > 0 || len(r.Drift) > 0
}
