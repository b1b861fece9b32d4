// Package opsmngr provides a client for the MongoDB Ops Manager and
// Cloud Manager Public API (the MMS Monitoring/Automation API, v1.0).
//
// The two products expose the same API with a slightly different endpoint
// surface. A client is constructed for one variant and refuses calls to
// endpoints the variant does not expose before any network traffic
// happens.
//
// # Architecture
//
//   - Client: one method per documented endpoint; every method resolves
//     its operation against a static endpoint catalog, validates
//     parameters, and dispatches through a single routine
//   - Transport: executes one digest-authenticated HTTP exchange and maps
//     the response to an Entity or a typed error
//   - Entity: API resources decoded as opaque documents and passed through
//     unchanged
//   - Errors: structured error types separating local validation failures
//     from remote and transport failures
//
// # Usage
//
// Create a client with the deployment URL and the API user's credentials:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := opsmngr.NewClient(
//		"https://opsmanager.example.com:8080",
//		"joe@example.com",
//		"0b8ce529-...-3f9c65bada7f",
//		logger,
//		opsmngr.WithVariant(opsmngr.OpsManager),
//		opsmngr.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	groups, err := client.GetGroups(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, group := range groups.Results() {
//		fmt.Println(group.ID(), group.Str("name"))
//	}
//
// # Error Handling
//
// Local failures are reported before any request is sent:
//
//   - UnsupportedOperationError: the endpoint is not exposed by the
//     client's variant
//   - InvalidParameterError: a required parameter or document field is
//     missing
//
// Remote failures carry enough context to act on without re-querying:
//
//   - ClientRequestError: 4xx responses, with the status and the server's
//     error message; IsNotFound and IsUnauthorized classify common cases
//   - TransportError: network failures and 5xx responses
//   - MalformedResponseError: a success response that was not valid JSON
//
// The client never retries and never swallows an error.
package opsmngr
