// Package repeat provides a generic polling engine: it repeatedly evaluates
// a caller-supplied check until it succeeds, times out, is explicitly
// aborted, or fails unrecoverably.
//
// Key Features:
//
// 1. Two completion modes:
//   - Condition: implicit mode, a true reading means done
//   - PollFunc: explicit mode, every iteration returns a tagged Result
//     carrying a value, a Done/Undone status and an optional delay
//
// 2. Timing policy:
//   - WithTimeout: wall-clock budget from task start; zero runs exactly
//     one iteration; omitting it loops until done, abort or error
//   - WithThreshold: stability window, the condition must hold
//     continuously for the full duration before the task finalizes
//   - WithPollInterval: minimum spacing between iterations; a per-result
//     Delay overrides it for the following iteration
//
// 3. Error policy:
//   - WithIgnoreErrors: error kinds that count as an undone iteration
//   - any other poll error fails the task immediately
//   - WithMessage / WithMessageFunc: failure message on timeout
//
// 4. Cancellation:
//   - Abort / AbortWithValue settle a task out of band and always win a
//     race with a scheduled iteration
//   - Manager.AbortAll cancels every live task at once, the teardown hook
//     a host test runner should call between sessions
//
// Basic usage example:
//
//	err := repeat.Until(ctx, func(ctx context.Context) (bool, error) {
//		return element.IsGone(), nil
//	},
//		repeat.WithTimeout(5*time.Second),
//		repeat.WithMessage("element never disappeared"))
//
// Explicit results with a value:
//
//	item, err := repeat.Do(ctx, func(ctx context.Context) (repeat.Result[*Item], error) {
//		item, found := lookup()
//		if !found {
//			return repeat.UndoneAfter[*Item](100 * time.Millisecond), nil
//		}
//		return repeat.DoneResult(item), nil
//	}, repeat.WithTimeout(10*time.Second))
//
// Stability threshold:
//
//	// accept "gone" only after 2s of continuous absence
//	err := repeat.Until(ctx, isGone,
//		repeat.WithThreshold(2*time.Second),
//		repeat.WithPollInterval(100*time.Millisecond))
//
// Teardown between sessions:
//
//	repeat.DefaultManager.AbortAll()
//
// Scheduling policy:
//
// Each iteration ends with a single clock-timer wait for the effective
// delay (per-result Delay, else the poll interval). With the default zero
// interval the next iteration starts as soon as the previous one returns;
// the poll function itself is expected to block on whatever it inspects.
// Waits never extend past the timeout budget.
//
// Thread safety:
//
// A task runs its iterations strictly sequentially on one goroutine.
// Execute, Abort and the Manager operations are safe for concurrent use.
// An iteration already in flight when a task is aborted is not
// interrupted; its eventual result is discarded.
package repeat
