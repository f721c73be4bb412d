package snapshot

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/gwtools"
	"github.com/hupe1980/gwtools/blobstore"
	"github.com/hupe1980/gwtools/ilwd"
)

// Options configures a Manager.
type Options struct {
	// Logger receives save/load diagnostics. Defaults to a noop logger.
	Logger *gwtools.Logger
	// CompressionLevel is the zstd level for saved snapshots.
	CompressionLevel zstd.EncoderLevel
}

// Manager saves and loads table snapshots through a blobstore.Store.
// Safe for concurrent use.
type Manager struct {
	store  blobstore.Store
	reg    *ilwd.Registry
	logger *gwtools.Logger

	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewManager creates a Manager writing to store and decoding identifiers
// against reg.
func NewManager(store blobstore.Store, reg *ilwd.Registry, optFns ...func(o *Options)) (*Manager, error) {
	opts := Options{
		Logger:           gwtools.NoopLogger(),
		CompressionLevel: zstd.SpeedDefault,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = gwtools.NoopLogger()
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(opts.CompressionLevel))
	if err != nil {
		return nil, fmt.Errorf("create compressor: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create decompressor: %w", err)
	}

	return &Manager{
		store:  store,
		reg:    reg,
		logger: opts.Logger,
		enc:    enc,
		dec:    dec,
	}, nil
}

// Save encodes t and writes it under name.
func (m *Manager) Save(ctx context.Context, name string, t *Table) error {
	payload, err := encodeTable(t)
	if err != nil {
		m.logger.LogSnapshot(ctx, "save", name, 0, err)
		return fmt.Errorf("encode snapshot: %w", err)
	}

	compressed := m.enc.EncodeAll(payload, nil)
	data := appendHeader(make([]byte, 0, headerSize+len(compressed)), compressed)
	data = append(data, compressed...)

	if err := m.store.Put(ctx, name, data); err != nil {
		m.logger.LogSnapshot(ctx, "save", name, 0, err)
		return fmt.Errorf("write snapshot %q: %w", name, err)
	}

	m.logger.LogSnapshot(ctx, "save", name, len(t.Events)+len(t.Coincs), nil)
	return nil
}

// Load reads and decodes the snapshot stored under name.
func (m *Manager) Load(ctx context.Context, name string) (*Table, error) {
	data, err := m.store.Get(ctx, name)
	if err != nil {
		m.logger.LogSnapshot(ctx, "load", name, 0, err)
		return nil, fmt.Errorf("read snapshot %q: %w", name, err)
	}

	compressed, err := checkHeader(data)
	if err != nil {
		m.logger.LogSnapshot(ctx, "load", name, 0, err)
		return nil, fmt.Errorf("snapshot %q: %w", name, err)
	}

	payload, err := m.dec.DecodeAll(compressed, nil)
	if err != nil {
		m.logger.LogSnapshot(ctx, "load", name, 0, err)
		return nil, fmt.Errorf("decompress snapshot %q: %w", name, err)
	}

	t, err := newDecoder(m.reg).decodeTable(payload)
	if err != nil {
		m.logger.LogSnapshot(ctx, "load", name, 0, err)
		return nil, fmt.Errorf("decode snapshot %q: %w", name, err)
	}

	m.logger.LogSnapshot(ctx, "load", name, len(t.Events)+len(t.Coincs), nil)
	return t, nil
}

// List returns the names of all snapshots with the given prefix.
func (m *Manager) List(ctx context.Context, prefix string) ([]string, error) {
	return m.store.List(ctx, prefix)
}
