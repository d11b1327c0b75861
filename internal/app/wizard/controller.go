package wizard

// Controller ведет пользователя по шагам мастера: вперед только после проверки, назад всегда
type Controller[S any] struct {
	wizard *Wizard[S]
	State  S

	step   int
	errors map[int][]string
}

func NewController[S any](w *Wizard[S], initial S) *Controller[S] {
	return &Controller[S]{
		wizard: w,
		State:  initial,
		errors: make(map[int][]string),
	}
}

func (c *Controller[S]) Step() int { return c.step }

func (c *Controller[S]) IsLast() bool { return c.step >= c.wizard.StepCount()-1 }

// Errors возвращает сохраненные ошибки шага (копию)
func (c *Controller[S]) Errors(step int) []string {
	errs := c.errors[step]
	out := make([]string, len(errs))
	copy(out, errs)
	return out
}

// Seek переставляет контроллер на шаг без проверки (восстановление черновика)
func (c *Controller[S]) Seek(step int) {
	c.step = clamp(step, 0, c.wizard.StepCount()-1)
}

// Update применяет изменение поля и сбрасывает ошибки текущего шага
func (c *Controller[S]) Update(mutate func(s *S)) {
	mutate(&c.State)
	delete(c.errors, c.step)
}

// Advance проверяет текущий шаг; при ошибках сохраняет их и остается на месте
func (c *Controller[S]) Advance() bool {
	errs := c.wizard.ValidateStep(&c.State, c.step)
	if len(errs) > 0 {
		c.errors[c.step] = errs
		return false
	}
	delete(c.errors, c.step)
	c.step = clamp(c.step+1, 0, c.wizard.StepCount()-1)
	return true
}

// Retreat — шаг назад без проверки
func (c *Controller[S]) Retreat() {
	c.step = clamp(c.step-1, 0, c.wizard.StepCount()-1)
}

// FirstInvalid проходит мастер с начала и возвращает первый непройденный шаг;
// -1 если все шаги заполнены
func (c *Controller[S]) FirstInvalid() int {
	c.step = 0
	for {
		if !c.Advance() {
			return c.step
		}
		if c.IsLast() {
			if errs := c.wizard.ValidateStep(&c.State, c.step); len(errs) > 0 {
				c.errors[c.step] = errs
				return c.step
			}
			return -1
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
