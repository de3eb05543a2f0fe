package usecase

import "time"

// SetNow lets tests in the external usecase_test package override the
// unexported clock used for milestone stamps.
func (u *OrderUseCase) SetNow(now func() time.Time) {
	u.now = now
}
