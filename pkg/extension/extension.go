package extension

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/logger"
	"github.com/dmitrymomot/mongotypes/pkg/mongotypes"
	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// ruleKind groups tags by the error taxonomy used in ToValidationErrors.
type ruleKind uint8

const (
	ruleObjectID ruleKind = iota + 1
	ruleSame
	ruleDocument
)

// Extension registers identifier and document tags on a go-playground validator.
type Extension struct {
	cfg      Config
	validate *playground.Validate
	lookup   mongotypes.ModelLookup
	logger   *slog.Logger
	recorder Recorder

	// normalized param -> *mongotypes.ModelMatcher for the document tag
	matchers sync.Map

	mu   sync.RWMutex
	tags map[string]tagInfo
}

type tagInfo struct {
	kind ruleKind
	// models is set for document tags bound to a fixed model set
	models string
}

// New registers the coercion hook and the built-in tags on v.
//
// lookup resolves model names used by the document tag and RegisterModel; it
// may be nil when only documents and models are used as references.
func New(v *playground.Validate, lookup mongotypes.ModelLookup, opts ...Option) (*Extension, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	e := &Extension{
		cfg:      DefaultConfig(),
		validate: v,
		lookup:   lookup,
		logger:   logger.Discard(),
		tags:     make(map[string]tagInfo),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}

	v.RegisterCustomTypeFunc(coerceObjectID, bson.ObjectID{}, odm.ObjectID{})

	if err := e.register(e.cfg.ObjectIDTag, tagInfo{kind: ruleObjectID}, e.validObjectID); err != nil {
		return nil, err
	}
	if err := e.register(e.cfg.SameFieldTag(), tagInfo{kind: ruleSame}, e.sameAsField); err != nil {
		return nil, err
	}
	if err := e.register(e.cfg.DocumentTag, tagInfo{kind: ruleDocument}, e.documentOf); err != nil {
		return nil, err
	}
	return e, nil
}

// Names returns the configured tag names.
func (e *Extension) Names() Config { return e.cfg }

// Validator returns the underlying go-playground validator.
func (e *Extension) Validator() *playground.Validate { return e.validate }

// RegisterSame registers tag as "identifier equals one of targets". Targets
// are extracted once, here.
func (e *Extension) RegisterSame(tag string, targets any) error {
	set := mongotypes.NewIDSet(targets)
	return e.register(tag, tagInfo{kind: ruleSame}, func(fl playground.FieldLevel) bool {
		value := fieldValue(fl)
		if _, err := mongotypes.ObjectIDOf(value); err != nil {
			return e.observe(tag, false)
		}
		return e.observe(tag, set.Contains(value) == nil)
	})
}

// RegisterModel registers tag as "document of one of refs". References are
// resolved immediately; an unknown model name is returned as an error.
func (e *Extension) RegisterModel(tag string, refs any) error {
	m, err := mongotypes.NewModelMatcher(e.lookup, refs)
	if err != nil {
		return fmt.Errorf("tag %q: %w", tag, err)
	}
	return e.register(tag, tagInfo{kind: ruleDocument, models: strings.Join(m.Names(), ", ")}, func(fl playground.FieldLevel) bool {
		return e.observe(tag, m.Match(fieldValue(fl)))
	})
}

func (e *Extension) register(tag string, info tagInfo, fn playground.Func) error {
	if err := e.validate.RegisterValidation(tag, fn); err != nil {
		return errors.Join(ErrRegisterTag, err)
	}
	e.mu.Lock()
	e.tags[tag] = info
	e.mu.Unlock()
	e.logger.Debug("validation tag registered", logger.Rule(tag))
	return nil
}

func (e *Extension) lookupTag(tag string) (tagInfo, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	info, ok := e.tags[tag]
	return info, ok
}

func (e *Extension) validObjectID(fl playground.FieldLevel) bool {
	_, err := mongotypes.ObjectIDOf(fieldValue(fl))
	return e.observe(e.cfg.ObjectIDTag, err == nil)
}

// sameAsField compares against a sibling field. The subject must be a valid
// ObjectID first; an unset id coerced to "" never matches another unset id.
func (e *Extension) sameAsField(fl playground.FieldLevel) bool {
	other, _, _, found := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
	if !found {
		return e.observe(e.cfg.SameFieldTag(), false)
	}
	value := fieldValue(fl)
	if _, err := mongotypes.ObjectIDOf(value); err != nil {
		return e.observe(e.cfg.SameFieldTag(), false)
	}
	return e.observe(e.cfg.SameFieldTag(), mongotypes.SameID(value, valueOf(other)))
}

// documentOf checks the value against the space separated model names in the
// tag param. Without a param any document passes.
func (e *Extension) documentOf(fl playground.FieldLevel) bool {
	value := fieldValue(fl)
	if strings.TrimSpace(fl.Param()) == "" {
		return e.observe(e.cfg.DocumentTag, mongotypes.Classify(value) == mongotypes.KindDocument)
	}
	return e.observe(e.cfg.DocumentTag, e.matcherFor(fl.Param()).Match(value))
}

// Preload resolves document tag params ahead of validation, so that unknown
// model names surface as errors at startup instead of panics on first use.
// Each param is written as in the tag, e.g. "car person".
func (e *Extension) Preload(params ...string) error {
	for _, param := range params {
		if _, err := e.resolveParam(param); err != nil {
			return fmt.Errorf("%s=%s: %w", e.cfg.DocumentTag, param, err)
		}
	}
	return nil
}

// matcherFor returns the cached matcher for a tag param, resolving it on first
// use. Unknown model names panic, like malformed params of built-in tags;
// Preload reports them as errors instead.
func (e *Extension) matcherFor(param string) *mongotypes.ModelMatcher {
	m, err := e.resolveParam(param)
	if err != nil {
		panic(fmt.Sprintf("%s=%s: %v", e.cfg.DocumentTag, param, err))
	}
	return m
}

func (e *Extension) resolveParam(param string) (*mongotypes.ModelMatcher, error) {
	key := strings.Join(strings.Fields(param), " ")
	if m, ok := e.matchers.Load(key); ok {
		return m.(*mongotypes.ModelMatcher), nil
	}
	m, err := mongotypes.NewModelMatcher(e.lookup, strings.Fields(param))
	if err != nil {
		return nil, err
	}
	actual, _ := e.matchers.LoadOrStore(key, m)
	e.logger.Debug("document tag resolved", logger.Model(key))
	return actual.(*mongotypes.ModelMatcher), nil
}

func (e *Extension) observe(rule string, passed bool) bool {
	if e.recorder != nil {
		e.recorder.ObserveCheck(rule, passed)
	}
	return passed
}

// coerceObjectID maps native identifiers to their hex form before any tag
// runs, so string tags like len or required work on them. Zero ids become "".
func coerceObjectID(field reflect.Value) any {
	if !field.IsValid() || field.IsZero() {
		return ""
	}
	id, _ := mongotypes.ExtractID(field.Interface())
	return id
}

func fieldValue(fl playground.FieldLevel) any {
	return valueOf(fl.Field())
}

// valueOf converts a reflected field to an interface value. Documents whose
// methods have pointer receivers are recovered through the field's address.
func valueOf(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	v := rv.Interface()
	if mongotypes.Classify(v) == mongotypes.KindUnknown && rv.CanAddr() {
		if doc, ok := rv.Addr().Interface().(odm.Document); ok {
			return doc
		}
	}
	return v
}
