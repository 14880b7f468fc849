package server

import (
	"fmt"
	"net/http"
	"time"
)

const reportLimitKeyPrefix = "report_limit"

// ReportRateLimiter caps report submissions per user per 24h window
// with a Redis counter. A pass-through when no Redis client is
// configured.
func (s *Service) ReportRateLimiter(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.redis == nil {
			next(w, r)
			return
		}

		user := s.currentUser(r)
		if user == nil {
			s.unauthorized(w)
			return
		}

		key := fmt.Sprintf("%s:%d", reportLimitKeyPrefix, user.ID)

		count, err := s.redis.Incr(r.Context(), key).Result()
		if err != nil {
			s.logger.WithError(err).Error("redis error incrementing report count")
			s.internalServerError(w)
			return
		}

		// TTL starts on the window's first submission.
		if count == 1 {
			if err := s.redis.Expire(r.Context(), key, 24*time.Hour).Err(); err != nil {
				s.logger.WithError(err).Error("redis error setting report count TTL")
				s.internalServerError(w)
				return
			}
		}

		if count > int64(s.config.ReportDailyLimit) {
			retryAfter, _ := s.redis.TTL(r.Context(), key).Result()
			s.writeError(w, http.StatusTooManyRequests,
				fmt.Sprintf("report limit exceeded, retry in %.0f seconds", retryAfter.Seconds()))
			return
		}

		next(w, r)
	}
}
