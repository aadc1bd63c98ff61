package utils

import "time"

// NowRFC3339 stamps snapshots and chat messages. Variable so tests can pin it.
var NowRFC3339 = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}
