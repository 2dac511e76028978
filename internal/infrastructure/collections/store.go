package collections

// DocumentStore es el motor de persistencia de colecciones: carga y
// reemplaza una colección nombrada como documento completo. Lo implementan
// jsonstore.Store (archivos JSON) y postgres.Store (tabla jsonb), de modo
// que los repositorios no dependen del motor.
type DocumentStore interface {
	Load(name string, out any) error
	Persist(name string, v any) error
}
