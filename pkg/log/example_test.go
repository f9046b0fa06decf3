package log

import (
	"os"
	"time"
)

// 这个文件演示如何使用日志设施
func Example() {
	clock := func() time.Time { return time.Date(2024, time.November, 20, 9, 30, 5, 0, time.UTC) }
	logger := New(WithConsole(os.Stdout), WithClock(clock))
	defer logger.Close()

	logger.SetThreshold(WarningLevel)
	logger.Info("x")
	logger.Error("failure: %d", 42)
	logger.ErrorAt(10, "main.src", "failure: %d", 42)

	// Output:
	// [Wed Nov 20 09:30:05 2024]	[Error]	failure: 42
	// [Wed Nov 20 09:30:05 2024]	[Error]	failure: 42	[line 10 in main.src]
}

func ExampleFacility_EnableFileOutputAt() {
	logger := New(WithConsole(os.Stdout))
	logger.EnableFileOutputAt("/nonexistent/dir/t.log")
	logger.SetThreshold(CriticalLevel)
	logger.Info("console only")

	// Output:
	// Logger: Failed to open file at /nonexistent/dir/t.log: no such file or directory
}
