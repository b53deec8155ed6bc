// Package godynamo contains controls and objects for DynamoDB table and item
// operations. Tables and Queries share one active table, used whenever an
// operation is called with an empty table name.
package godynamo

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

const (
	// MaxBatchWriteItems is the most write requests DynamoDB accepts in one BatchWriteItem call.
	MaxBatchWriteItems = 25

	DefaultWaitTimeout = 5 * time.Minute
)

type Options struct {
	Logger *slog.Logger
	// FS is the filesystem item and schema files are read from. Defaults to the host filesystem.
	FS billy.Filesystem
	// ReadCapacityUnits and WriteCapacityUnits set the provisioned throughput of
	// new tables. Nil means 1. When both are 0 tables are created on-demand.
	ReadCapacityUnits  *int64
	WriteCapacityUnits *int64
	// WaitTimeout bounds how long CreateTable waits for a table to become active.
	WaitTimeout time.Duration
}

func (o Options) withDefaults() Options {
	o.Logger = goaws.LoggerOrDefault(o.Logger)
	if o.FS == nil {
		o.FS = osfs.New("")
	}
	if o.ReadCapacityUnits == nil {
		o.ReadCapacityUnits = pointy.Int64(1)
	}
	if o.WriteCapacityUnits == nil {
		o.WriteCapacityUnits = pointy.Int64(1)
	}
	if o.WaitTimeout <= 0 {
		o.WaitTimeout = DefaultWaitTimeout
	}
	return o
}

type DynamoDB struct {
	Tables  TablesLogic
	Queries QueriesLogic
}

// NewDynamoDB builds the Tables and Queries halves from sess around a single
// active table. If sess holds a fault, every operation reports it.
func NewDynamoDB(sess *goaws.Session, opts Options) *DynamoDB {
	if opts.Logger == nil && sess != nil {
		opts.Logger = sess.Logger()
	}
	opts = opts.withDefaults()

	svc, err := goaws.CreateClient(sess, dynamodb.NewFromConfig)
	active := new(ActiveTable)

	tables := NewTables(svc, active, opts)
	tables.err = err
	queries := NewQueries(svc, active, opts)
	queries.err = err

	return &DynamoDB{
		Tables:  tables,
		Queries: queries,
	}
}

// ActiveTable is the table selected by the last CreateTable or GetTable call,
// with the attribute names defined on it.
type ActiveTable struct {
	mu     sync.RWMutex
	name   string
	fields []string
}

func (a *ActiveTable) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

func (a *ActiveTable) Fields() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.fields...)
}

func (a *ActiveTable) set(name string, fields []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name, a.fields = name, fields
}

// resolve returns name, or the active table when name is empty.
func (a *ActiveTable) resolve(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if active := a.Name(); active != "" {
		return active, nil
	}
	return "", NewNoActiveTableError()
}
