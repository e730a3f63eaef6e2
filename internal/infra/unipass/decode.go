package unipass

import (
	"fmt"

	"github.com/aalvaropc/customs/internal/domain"
	"github.com/aalvaropc/customs/internal/usecase/extract"
)

type stringField struct {
	key string
	ptr func(*domain.CargoMaster) *string
}

// masterFields lists every resultListM key the presenter needs.
var masterFields = []stringField{
	{"mblNo", func(m *domain.CargoMaster) *string { return &m.MasterBL }},
	{"hblNo", func(m *domain.CargoMaster) *string { return &m.HouseBL }},
	{"cargMtNo", func(m *domain.CargoMaster) *string { return &m.CargoManagementNo }},
	{"shcoFlcoSgn", func(m *domain.CargoMaster) *string { return &m.CarrierName }},
	{"sanm", func(m *domain.CargoMaster) *string { return &m.CarrierCode }},
	{"loadPortAirptCd", func(m *domain.CargoMaster) *string { return &m.LoadPort }},
	{"unldPortAirptCd", func(m *domain.CargoMaster) *string { return &m.UnloadPort }},
	{"etprCstmSgn", func(m *domain.CargoMaster) *string { return &m.CustomsOffice }},
	{"prnm", func(m *domain.CargoMaster) *string { return &m.Description }},
	{"blPcd", func(m *domain.CargoMaster) *string { return &m.TypeCode }},
	{"blPcdNm", func(m *domain.CargoMaster) *string { return &m.TypeName }},
	{"cmdtGcnt", func(m *domain.CargoMaster) *string { return &m.PieceCount }},
	{"pckKcd", func(m *domain.CargoMaster) *string { return &m.PackageUnit }},
	{"cmdtWght", func(m *domain.CargoMaster) *string { return &m.Weight }},
	{"kg", func(m *domain.CargoMaster) *string { return &m.WeightUnit }},
	{"etprDt", func(m *domain.CargoMaster) *string { return &m.UnloadDate }},
	{"prgsSttsEn", func(m *domain.CargoMaster) *string { return &m.StatusEn }},
	{"prgsStts", func(m *domain.CargoMaster) *string { return &m.Status }},
}

func decodeSummary(body []byte) (domain.Summary, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return domain.Summary{}, err
	}

	rows, err := extract.Array(doc, "$.resultList")
	if err != nil {
		return domain.Summary{}, err
	}

	s := domain.Summary{Results: make([]domain.SummaryItem, 0, len(rows))}
	for i, row := range rows {
		no, err := extract.String(row, "$.cargMtNo")
		if err != nil {
			return domain.Summary{}, atIndex(err, "$.resultList", i)
		}
		s.Results = append(s.Results, domain.SummaryItem{CargoManagementNo: no})
	}
	return s, nil
}

func decodeDetail(body []byte) (domain.CargoDetail, error) {
	doc, err := extract.Parse(body)
	if err != nil {
		return domain.CargoDetail{}, err
	}

	rules := make(extract.Rules, len(masterFields))
	for _, f := range masterFields {
		rules[f.key] = "$.resultListM." + f.key
	}
	values, err := extract.Fields(doc, rules)
	if err != nil {
		return domain.CargoDetail{}, err
	}

	var d domain.CargoDetail
	for _, f := range masterFields {
		*f.ptr(&d.Master) = values[f.key]
	}

	rows, err := extract.Array(doc, "$.resultListL")
	if err != nil {
		return domain.CargoDetail{}, err
	}

	d.Events = make([]domain.TrackingEvent, 0, len(rows))
	for i, row := range rows {
		ev, err := decodeEvent(row)
		if err != nil {
			return domain.CargoDetail{}, atIndex(err, "$.resultListL", i)
		}
		d.Events = append(d.Events, ev)
	}
	return d, nil
}

func decodeEvent(row any) (domain.TrackingEvent, error) {
	var ev domain.TrackingEvent
	var err error

	if ev.ProcessedAt, err = extract.String(row, "$.prcsDttm"); err != nil {
		return ev, err
	}
	if ev.Progress, err = extract.String(row, "$.cargTrcnRelaBsopTpcd"); err != nil {
		return ev, err
	}
	if ev.Address, err = extract.OptionalString(row, "$.snarAddr"); err != nil {
		return ev, err
	}
	if ev.Phone, err = extract.OptionalString(row, "$.snarTelno"); err != nil {
		return ev, err
	}
	return ev, nil
}

func atIndex(err error, list string, i int) error {
	return &domain.OpError{
		Op:   "unipass.decode",
		Kind: domain.KindOf(err),
		Path: fmt.Sprintf("%s[%d]", list, i),
		Err:  err,
	}
}
