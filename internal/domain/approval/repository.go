package approval

// Reviewable is implemented by records carrying a Lifecycle.
type Reviewable interface {
	Approval() *Lifecycle
}
