// pkg/clock/example_test.go

package clock_test

import (
	"fmt"
	"time"

	"github.com/ahmed-masud/monotonic-clock/pkg/clock"
)

func Example() {
	c := clock.New()
	start := c.Now()
	time.Sleep(100 * time.Millisecond)
	end := c.Now()
	fmt.Println(end-start >= 100*time.Millisecond)
	// Output: true
}

func ExampleClock_Stop() {
	c := clock.New()
	c.Stop()
	frozen := c.Now()
	time.Sleep(50 * time.Millisecond)
	fmt.Println(c.Now() == frozen)
	// Output: true
}
