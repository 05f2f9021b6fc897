package settings

type ExportResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}
