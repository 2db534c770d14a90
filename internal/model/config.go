package model

// AdminConfig is the store configuration edited in the admin settings form.
// Saves replace the whole record; there is no partial merge.
type AdminConfig struct {
	// ScriptURL is the order submission endpoint (a Google Apps Script web
	// app in the original deployment). Orders cannot be placed while empty.
	ScriptURL string `json:"scriptUrl"`
	// SheetURL is a display-only link to the backing spreadsheet.
	SheetURL string `json:"sheetUrl"`
}
