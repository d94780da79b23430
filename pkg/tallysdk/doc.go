// Package tallysdk is a Go client for the tally service.
//
// The SDKClient exposes the unauthenticated endpoints (register, login,
// health). A successful Login returns a Session, which carries the bearer
// token and exposes the task and cost endpoints.
//
//	client := tallysdk.NewSDKClient("http://localhost:8080")
//
//	if err := client.Register(ctx, "alice", "s3cret", "s3cret"); err != nil {
//		return err
//	}
//
//	session, err := client.Login(ctx, "alice", "s3cret")
//	if err != nil {
//		return err
//	}
//
//	task, err := session.CreateTask(ctx, tallysdk.TaskRequest{Title: "buy milk"})
//
// Tokens never expire. Session.Token can be stored and revived later with
// NewSessionFromToken.
//
// Errors from the service are returned as *APIError with the HTTP status and
// the server's detail message.
package tallysdk
