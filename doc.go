// Package simplelogin provides a Go client for the SimpleLogin
// email-alias service HTTP API: authentication, alias management,
// mailbox listing and account info.
//
// Basic usage:
//
//	client := simplelogin.New("")
//	session, err := client.Auth.Login(ctx, email, password, device)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Re-construct with the issued key to call authenticated endpoints.
//	client = simplelogin.New(*session.APIKey)
//
//	aliases, err := client.Aliases.List(ctx, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("aliases:", len(aliases))
package simplelogin
