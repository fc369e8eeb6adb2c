package usecase

import (
	"time-calculator/internal/calculation"
	"time-calculator/internal/echo"
	"time-calculator/internal/form"
	"time-calculator/internal/preset"
	"time-calculator/pkg/datemath"
	pkgLog "time-calculator/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	form    *form.Context
	presets preset.UseCase
	calc    calculation.UseCase
	echo    *echo.Echo
	clock   *datemath.Clock
}

// New creates the form session UseCase. f must be the same form calc was built on.
func New(
	l pkgLog.Logger,
	f *form.Context,
	presets preset.UseCase,
	calc calculation.UseCase,
	e *echo.Echo,
	clock *datemath.Clock,
) form.UseCase {
	return &implUseCase{
		l:       l,
		form:    f,
		presets: presets,
		calc:    calc,
		echo:    e,
		clock:   clock,
	}
}
