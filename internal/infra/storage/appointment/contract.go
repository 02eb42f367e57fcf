package appointment

import "github.com/salao-digital/salon-scheduler/pkg/txmanager"

// DBExecutor abstracts *sql.DB so the repository can run inside a
// context-scoped transaction through txmanager
type DBExecutor = txmanager.Executor
