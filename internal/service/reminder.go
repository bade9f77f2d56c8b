package service

import "context"

// RunDuesReminders emails every student whose latest ledger entry carries a
// positive balance. Send failures are logged and skipped so one bad address
// does not stall the rest of the batch.
func (s *Service) RunDuesReminders(ctx context.Context) (int, error) {
	targets, err := s.repo.StudentsWithDues(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, t := range targets {
		if err := s.mailer.SendDuesReminder(t.Email, t.Name, t.Dues); err != nil {
			s.log.Errorf("Failed to send dues reminder to student %d: %v", t.StudentID, err)
			continue
		}
		sent++
	}

	s.log.Infof("Dues reminders sent: %d of %d", sent, len(targets))
	return sent, nil
}
