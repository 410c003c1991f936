// Package gateway is the single chokepoint between the app and the remote
// catalogue endpoint. Writes are POSTed as an action name plus payload and
// every response is normalised into either a decoded envelope or a
// *RemoteCallError. Reads degrade to an empty product list instead of failing.
package gateway
