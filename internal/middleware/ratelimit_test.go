package middleware

import "testing"

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(60, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d inside burst was denied", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request beyond burst was allowed")
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(60, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first client denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("first client allowed past burst")
	}
	// A different client has its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Error("second client denied by first client's bucket")
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	if !rl.Allow("10.0.0.1") {
		t.Error("default limiter denied the first request")
	}
}
