package domain

// SummaryItem is one row of the summary lookup (resultList).
type SummaryItem struct {
	CargoManagementNo string `json:"cargMtNo"`
}

// Summary is the decoded summary lookup response.
type Summary struct {
	Results []SummaryItem `json:"resultList"`
}

// First returns the first summary row or a no_results error.
func (s Summary) First() (SummaryItem, error) {
	if len(s.Results) == 0 {
		return SummaryItem{}, &OpError{
			Op:   "summary.first",
			Kind: KindNoResults,
			Err:  ErrNoResults,
		}
	}
	return s.Results[0], nil
}

// CargoMaster is the flat shipment record (resultListM).
// JSON names are the ones UNIPASS uses on the wire.
type CargoMaster struct {
	MasterBL          string `json:"mblNo"`
	HouseBL           string `json:"hblNo"`
	CargoManagementNo string `json:"cargMtNo"`

	CarrierName   string `json:"shcoFlcoSgn"`
	CarrierCode   string `json:"sanm"`
	LoadPort      string `json:"loadPortAirptCd"`
	UnloadPort    string `json:"unldPortAirptCd"`
	CustomsOffice string `json:"etprCstmSgn"`
	Description   string `json:"prnm"`
	TypeCode      string `json:"blPcd"`
	TypeName      string `json:"blPcdNm"`
	PieceCount    string `json:"cmdtGcnt"`
	PackageUnit   string `json:"pckKcd"`
	Weight        string `json:"cmdtWght"`
	WeightUnit    string `json:"kg"`
	UnloadDate    string `json:"etprDt"`

	// StatusEn and Status are prgsSttsEn/prgsStts. cargTpcdEn is not read.
	StatusEn string `json:"prgsSttsEn"`
	Status   string `json:"prgsStts"`
}

// TrackingEvent is one entry of the movement history (resultListL).
type TrackingEvent struct {
	ProcessedAt string `json:"prcsDttm"`
	Progress    string `json:"cargTrcnRelaBsopTpcd"`
	Address     string `json:"snarAddr"`
	Phone       string `json:"snarTelno"`
}

// HasLocation reports whether both location fields are present.
func (e TrackingEvent) HasLocation() bool {
	return e.Address != "" && e.Phone != ""
}

// CargoDetail is the decoded detail lookup response.
// Events keep the API order, which is newest first.
type CargoDetail struct {
	Master CargoMaster     `json:"resultListM"`
	Events []TrackingEvent `json:"resultListL"`
}

// Chronological returns the events oldest first without mutating d.
func (d CargoDetail) Chronological() []TrackingEvent {
	out := make([]TrackingEvent, len(d.Events))
	for i, ev := range d.Events {
		out[len(d.Events)-1-i] = ev
	}
	return out
}

// TrackResult is the outcome of one tracking run.
type TrackResult struct {
	LookupID string      `json:"lookup_id"`
	Query    Query       `json:"query"`
	Detail   CargoDetail `json:"detail"`
}
