package repository

// AuditRepository define el puerto del log de auditoría.
// Las escrituras son fire-and-forget: un fallo del log nunca revierte la
// operación que lo originó (el caller lo registra en el logger y continúa).
type AuditRepository interface {
	Record(operatorID, action, entity, entityID string) error
}
