package usecase

import "time"

// SetNowForTest overrides the clock of a DownloadUseCase in tests.
func (u *DownloadUseCase) SetNowForTest(now func() time.Time) {
	u.now = now
}

// SetNowForTest overrides the clock of a ReviewUseCase in tests.
func (u *ReviewUseCase) SetNowForTest(now func() time.Time) {
	u.now = now
}
