package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// ConfigVarName - имя переменной конфигурации с каталогом исполняемых файлов Галактики.
	ConfigVarName = "GALAKTIKA_EXE"
	// DefaultGalaktikaExe - значение по умолчанию.
	DefaultGalaktikaExe = `C:\GalaktikaCorp\gal91\exe`
)

// ValidationResult - результат проверки каталога.
type ValidationResult int

const (
	Absent ValidationResult = iota
	Present
)

func (r ValidationResult) String() string {
	if r == Present {
		return "present"
	}
	return "absent"
}

// ErrConfiguredDirectoryMissing - единственный вид ошибки: каталога нет,
// это не каталог, он недоступен или путь задан некорректно.
var ErrConfiguredDirectoryMissing = errors.New("configured directory missing")

// MissingDirError содержит имя переменной и её значение в точности как оно задано.
type MissingDirError struct {
	Name string
	Path string
}

func (e *MissingDirError) Error() string {
	return fmt.Sprintf("путь, указанный в %s, не найден: %s", e.Name, e.Path)
}

func (e *MissingDirError) Is(target error) bool {
	return target == ErrConfiguredDirectoryMissing
}

// ConfigGuard хранит настроенный путь и проверяет его наличие.
// Значение задается один раз при создании и больше не меняется.
type ConfigGuard struct {
	name string
	path string
}

// NewConfigGuard запоминает путь без какой-либо проверки.
func NewConfigGuard(path string) *ConfigGuard {
	return &ConfigGuard{
		name: ConfigVarName,
		path: path,
	}
}

func (g *ConfigGuard) Name() string { return g.name }

func (g *ConfigGuard) Path() string { return g.path }

// Validate возвращает Present только если путь корректен и указывает на доступный каталог.
func (g *ConfigGuard) Validate() ValidationResult {
	res, _ := g.probe()
	return res
}

func (g *ConfigGuard) probe() (ValidationResult, error) {
	if !wellFormed(g.path) {
		return Absent, nil
	}
	ok, err := dirExists(g.path)
	if err != nil || !ok {
		return Absent, err
	}
	return Present, nil
}

// Enforce возвращает nil, если каталог на месте, иначе *MissingDirError.
// Завершать процесс - решение вызывающего.
func (g *ConfigGuard) Enforce(logger zerolog.Logger) error {
	res, err := g.probe()
	logger.Debug().
		Str("name", g.name).
		Str("path", g.path).
		Stringer("result", res).
		AnErr("probe_error", err).
		Msg("проверка каталога")

	if res == Present {
		return nil
	}
	return &MissingDirError{Name: g.name, Path: g.path}
}
