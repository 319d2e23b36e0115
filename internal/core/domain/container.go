package domain

// Container is a shipping container referenced by shipments.
type Container struct {
	ContainerID string  `json:"containerID"`
	ContainerNo string  `json:"containerNo"`
	Notes       *string `json:"notes,omitempty"`
	AuditFields
}
