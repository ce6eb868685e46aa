package types

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

type SyncResponse struct {
	Status   string `json:"status"`
	Received bool   `json:"received"`
}

// StatusResponse times are unix milliseconds.
type StatusResponse struct {
	Connected       bool   `json:"connected"`
	LastUpdate      int64  `json:"lastUpdate"`
	TimeSinceUpdate int64  `json:"timeSinceUpdate"`
	GameName        string `json:"gameName"`
	ContainerCount  int    `json:"containerCount"`
}
