package ledger

import "github.com/gauravmishra2744/DHARMAVERSE/domain"

// TrackingInfo synthesizes the delivery-progress view for a tracking id.
// The result is a deterministic function of the order's creation time, its
// shipping method and the current clock; it reflects no real carrier data.
func (s *Service) TrackingInfo(trackingID string) (*domain.TrackingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].TrackingID == trackingID {
			info := domain.SynthesizeTracking(trackingID, s.orders[i].CreatedAt, s.orders[i].Method, s.now())
			return &info, nil
		}
	}
	return nil, ErrTrackingNotFound
}
