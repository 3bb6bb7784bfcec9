package navigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BurntSushi/toml"
)

// State is the persisted form of a navigator namespace.
type State struct {
	History []string
	Cursor  int
	Records map[string]ViewInfo
}

// IsZero reports whether the state holds no history.
func (s State) IsZero() bool {
	return len(s.History) == 0 && len(s.Records) == 0
}

// Store loads and saves navigator state per namespace id.
// Load returns a zero State and no error when nothing was saved yet.
type Store interface {
	Load(id string) (State, error)
	Save(id string, state State) error
}

// ErrUnsupportedArg is returned by To for arguments the store cannot persist.
var ErrUnsupportedArg = errors.New("navigator: unsupported argument type")

// ArgChecker is implemented by stores that persist only some argument types.
// The navigator consults it before changing any state.
type ArgChecker interface {
	CheckArgs(args []any) error
}

// MemoryStore keeps state for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Load(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[id], nil
}

func (s *MemoryStore) Save(id string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = state
	return nil
}

// FileStore keeps one TOML file per namespace id inside Dir.
//
// Arguments are stored with their Go type so they load back exactly as
// passed: nil, bool, string and the sized and unsized integer and float
// kinds. Anything else is rejected by CheckArgs.
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file holding the state for id.
func (s *FileStore) Path(id string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, id)
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.Dir, name+".toml")
}

// CheckArgs reports ErrUnsupportedArg for the first argument that cannot be stored.
func (s *FileStore) CheckArgs(args []any) error {
	for i, arg := range args {
		if _, err := encodeArg(arg); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func (s *FileStore) Load(id string) (State, error) {
	var stored fileState
	if _, err := toml.DecodeFile(s.Path(id), &stored); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("decode navigator state: %w", err)
	}

	state := State{History: stored.History, Cursor: stored.Cursor}
	if len(stored.Records) > 0 {
		state.Records = make(map[string]ViewInfo, len(stored.Records))
	}
	for hash, rec := range stored.Records {
		info := ViewInfo{View: rec.View, Timestamp: rec.Timestamp}
		for i, a := range rec.Args {
			arg, err := decodeArg(a)
			if err != nil {
				return State{}, fmt.Errorf("decode navigator state: record %q argument %d: %w", hash, i, err)
			}
			info.Args = append(info.Args, arg)
		}
		state.Records[hash] = info
	}
	return state, nil
}

func (s *FileStore) Save(id string, state State) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := s.Path(id)
	tmp, err := os.CreateTemp(s.Dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	stored, err := toFileState(state)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("encode navigator state: %w", err)
	}
	if err := toml.NewEncoder(tmp).Encode(stored); err != nil {
		tmp.Close()
		return fmt.Errorf("encode navigator state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), constants.DefaultStateFileMode); err != nil {
		return fmt.Errorf("chmod state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

type fileState struct {
	History []string              `toml:"history"`
	Cursor  int                   `toml:"cursor"`
	Records map[string]fileRecord `toml:"records"`
}

type fileRecord struct {
	View      string    `toml:"view"`
	Args      []fileArg `toml:"args,omitempty"`
	Timestamp int64     `toml:"timestamp"`
}

// fileArg holds one argument as its type name and text form. TOML has no
// null and a single integer type, so neither can carry the value directly.
type fileArg struct {
	Type  string `toml:"type"`
	Value string `toml:"value"`
}

func toFileState(state State) (fileState, error) {
	stored := fileState{History: state.History, Cursor: state.Cursor}
	if len(state.Records) > 0 {
		stored.Records = make(map[string]fileRecord, len(state.Records))
	}
	for hash, info := range state.Records {
		rec := fileRecord{View: info.View, Timestamp: info.Timestamp}
		for i, arg := range info.Args {
			a, err := encodeArg(arg)
			if err != nil {
				return fileState{}, fmt.Errorf("record %q argument %d: %w", hash, i, err)
			}
			rec.Args = append(rec.Args, a)
		}
		stored.Records[hash] = rec
	}
	return stored, nil
}

func encodeArg(arg any) (fileArg, error) {
	switch v := arg.(type) {
	case nil:
		return fileArg{Type: "nil"}, nil
	case bool:
		return fileArg{Type: "bool", Value: strconv.FormatBool(v)}, nil
	case string:
		return fileArg{Type: "string", Value: v}, nil
	case int:
		return fileArg{Type: "int", Value: strconv.FormatInt(int64(v), 10)}, nil
	case int8:
		return fileArg{Type: "int8", Value: strconv.FormatInt(int64(v), 10)}, nil
	case int16:
		return fileArg{Type: "int16", Value: strconv.FormatInt(int64(v), 10)}, nil
	case int32:
		return fileArg{Type: "int32", Value: strconv.FormatInt(int64(v), 10)}, nil
	case int64:
		return fileArg{Type: "int64", Value: strconv.FormatInt(v, 10)}, nil
	case uint:
		return fileArg{Type: "uint", Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint8:
		return fileArg{Type: "uint8", Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint16:
		return fileArg{Type: "uint16", Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint32:
		return fileArg{Type: "uint32", Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint64:
		return fileArg{Type: "uint64", Value: strconv.FormatUint(v, 10)}, nil
	case float32:
		return fileArg{Type: "float32", Value: strconv.FormatFloat(float64(v), 'g', -1, 32)}, nil
	case float64:
		return fileArg{Type: "float64", Value: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	default:
		return fileArg{}, fmt.Errorf("%w: %T", ErrUnsupportedArg, arg)
	}
}

func decodeArg(a fileArg) (any, error) {
	switch a.Type {
	case "nil":
		return nil, nil
	case "bool":
		return strconv.ParseBool(a.Value)
	case "string":
		return a.Value, nil
	case "int", "int8", "int16", "int32", "int64":
		bits := map[string]int{"int": strconv.IntSize, "int8": 8, "int16": 16, "int32": 32, "int64": 64}[a.Type]
		n, err := strconv.ParseInt(a.Value, 10, bits)
		if err != nil {
			return nil, err
		}
		switch a.Type {
		case "int":
			return int(n), nil
		case "int8":
			return int8(n), nil
		case "int16":
			return int16(n), nil
		case "int32":
			return int32(n), nil
		}
		return n, nil
	case "uint", "uint8", "uint16", "uint32", "uint64":
		bits := map[string]int{"uint": strconv.IntSize, "uint8": 8, "uint16": 16, "uint32": 32, "uint64": 64}[a.Type]
		n, err := strconv.ParseUint(a.Value, 10, bits)
		if err != nil {
			return nil, err
		}
		switch a.Type {
		case "uint":
			return uint(n), nil
		case "uint8":
			return uint8(n), nil
		case "uint16":
			return uint16(n), nil
		case "uint32":
			return uint32(n), nil
		}
		return n, nil
	case "float32":
		f, err := strconv.ParseFloat(a.Value, 32)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case "float64":
		return strconv.ParseFloat(a.Value, 64)
	default:
		return nil, fmt.Errorf("%w: stored type %q", ErrUnsupportedArg, a.Type)
	}
}
