package wizard

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// только цифры, без знака и точки (ИНН)
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return s != ""
	})
	// целое число (количество участников)
	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})
	return v
}

// Predicate — условие над текущим состоянием формы
type Predicate[S any] func(s *S) bool

func always[S any](*S) bool { return true }

// Field — декларативное описание поля: видимость, обязательность и правило проверки
type Field[S any] struct {
	Name  string
	Label string
	Value func(s *S) any

	// nil = поле всегда видно
	Visible Predicate[S]
	// nil = поле необязательно
	Required Predicate[S]

	// тег go-playground/validator, применяется к непустому значению
	Rule    string
	Message string

	// межполевая проверка, возвращает текст ошибки или ""
	Check func(s *S) string
}

type Step[S any] struct {
	Title  string
	Fields []Field[S]
}

// Wizard — упорядоченный список шагов одного мастера
type Wizard[S any] struct {
	kind  Kind
	steps []Step[S]
}

func newWizard[S any](kind Kind, steps ...Step[S]) *Wizard[S] {
	return &Wizard[S]{kind: kind, steps: steps}
}

func (w *Wizard[S]) Kind() Kind     { return w.kind }
func (w *Wizard[S]) StepCount() int { return len(w.steps) }

// ValidateStep проверяет шаг; пустой список означает, что шаг заполнен верно
func (w *Wizard[S]) ValidateStep(s *S, step int) []string {
	errs := []string{}
	if step < 0 || step >= len(w.steps) {
		return errs
	}

	for _, f := range w.steps[step].Fields {
		if f.Visible != nil && !f.Visible(s) {
			continue
		}
		if msg := f.validate(s); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// VisibleFields возвращает имена полей шага, видимых при текущем состоянии
func (w *Wizard[S]) VisibleFields(s *S, step int) []string {
	names := []string{}
	if step < 0 || step >= len(w.steps) {
		return names
	}
	for _, f := range w.steps[step].Fields {
		if f.Visible == nil || f.Visible(s) {
			names = append(names, f.Name)
		}
	}
	return names
}

func (f Field[S]) validate(s *S) string {
	var value any
	if f.Value != nil {
		value = f.Value(s)
	}

	if isEmpty(value) {
		if f.Required != nil && f.Required(s) {
			if f.Message != "" && f.Rule == "" {
				return f.Message
			}
			return f.Label + " is required"
		}
		if f.Check == nil {
			return ""
		}
	} else if f.Rule != "" {
		if err := validate.Var(value, f.Rule); err != nil {
			if f.Message != "" {
				return f.Message
			}
			return f.Label + " is invalid"
		}
	}

	if f.Check != nil {
		return f.Check(s)
	}
	return ""
}

// isEmpty: пустая строка, пустой срез/мапа, false. Числа пустыми не считаются —
// их проверяет правило (например gt=0)
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ============ Метаданные для клиента ============

type FieldInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Conditional bool   `json:"conditional"`
}

type StepInfo struct {
	Index  int         `json:"index"`
	Title  string      `json:"title"`
	Fields []FieldInfo `json:"fields"`
}

func (w *Wizard[S]) Describe() []StepInfo {
	info := make([]StepInfo, len(w.steps))
	for i, st := range w.steps {
		fields := make([]FieldInfo, len(st.Fields))
		for j, f := range st.Fields {
			fields[j] = FieldInfo{Name: f.Name, Label: f.Label, Conditional: f.Visible != nil}
		}
		info[i] = StepInfo{Index: i, Title: st.Title, Fields: fields}
	}
	return info
}

// ============ Нетипизированный доступ (HTTP) ============

// Definition — мастер без параметра типа, работает с сырым JSON состояния
type Definition interface {
	Kind() Kind
	StepCount() int
	Describe() []StepInfo
	Validate(raw json.RawMessage, step int) (Result, error)
	Navigate(raw json.RawMessage, step int, forward bool) (Result, error)
}

// Result — итог проверки или перехода
type Result struct {
	Step          int      `json:"step"`
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	VisibleFields []string `json:"visibleFields"`
	Last          bool     `json:"last"`
}

func (w *Wizard[S]) decode(raw json.RawMessage) (*S, error) {
	s := new(S)
	if len(raw) == 0 || string(raw) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("decode %s state: %w", w.kind, err)
	}
	return s, nil
}

func (w *Wizard[S]) Validate(raw json.RawMessage, step int) (Result, error) {
	s, err := w.decode(raw)
	if err != nil {
		return Result{}, err
	}
	errs := w.ValidateStep(s, step)
	return Result{
		Step:          step,
		Valid:         len(errs) == 0,
		Errors:        errs,
		VisibleFields: w.VisibleFields(s, step),
		Last:          step >= len(w.steps)-1,
	}, nil
}

// Navigate восстанавливает контроллер на шаге step и делает шаг вперед или назад
func (w *Wizard[S]) Navigate(raw json.RawMessage, step int, forward bool) (Result, error) {
	s, err := w.decode(raw)
	if err != nil {
		return Result{}, err
	}

	c := NewController(w, *s)
	c.Seek(step)

	if forward {
		c.Advance()
	} else {
		c.Retreat()
	}

	// при неудаче контроллер остается на том же шаге и хранит его ошибки
	errs := c.Errors(c.Step())
	return Result{
		Step:          c.Step(),
		Valid:         len(errs) == 0,
		Errors:        errs,
		VisibleFields: w.VisibleFields(&c.State, c.Step()),
		Last:          c.IsLast(),
	}, nil
}

// ============ Реестр ============

var registry = map[Kind]Definition{
	BusinessCase: BusinessCaseWizard,
	Consulting:   ConsultingWizard,
	Training:     TrainingWizard,
}

// Lookup возвращает мастер по имени типа
func Lookup(kind string) (Definition, bool) {
	d, ok := registry[Kind(kind)]
	return d, ok
}

func Kinds() []Kind {
	return []Kind{BusinessCase, Consulting, Training}
}
