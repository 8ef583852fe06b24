package common

// SessionCookieName is the name of the HTTP cookie that carries the
// session token between the browser and the server.
const SessionCookieName = "token"
