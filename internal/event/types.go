// internal/event/types.go
package event

const (
	PendantInvalidated EventType = "PendantInvalidated" // Пендант нужно перерисовать
	PendantsLoaded     EventType = "PendantsLoaded"     // Определения загружены
)
