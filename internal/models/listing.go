// Package models defines the canonical listing produced by the normalizer.
package models

import "zexplorer/internal/jsonval"

// CanonicalKeys are the top-level keys every normalized listing carries, in
// output order.
var CanonicalKeys = []string{
	"zpid",
	"price",
	"address",
	"bedrooms",
	"bathrooms",
	"livingArea",
	"yearBuilt",
	"lotSizeWithUnit",
	"propertyType",
	"taxAssessment",
	"priceHistory",
	"taxHistory",
	"schools",
	"walkScore",
	"resoFacts",
	"attributionInfo",
	"photos",
	"url",
}

// Listing is a property listing in canonical form. Pointer fields are nil
// when the source record had no usable value.
type Listing struct {
	WalkScore       *WalkScore
	ResoFacts       *jsonval.Object
	AttributionInfo *jsonval.Object
	Bedrooms        *int64
	Bathrooms       *float64
	LivingArea      *int64
	YearBuilt       *int64
	LotSize         *int64
	PropertyType    *string
	URL             *string
	Price           Price
	Address         Address
	TaxAssessment   TaxAssessment
	PriceHistory    []jsonval.Value
	TaxHistory      []jsonval.Value
	Photos          []jsonval.Value
	Schools         []School
	ZPID            int64
}

// Price holds the listing price.
type Price struct {
	Value *int64
}

// Address holds the postal address.
type Address struct {
	StreetAddress *string
	City          *string
	State         *string
	Zipcode       *string
}

// TaxAssessment holds the latest assessed value.
type TaxAssessment struct {
	AssessedValue  *int64
	AssessmentYear *string
}

// School is a nearby school.
type School struct {
	Name     *string
	Rating   *int64
	Distance *float64
}

// WalkScore is the walkability rating.
type WalkScore struct {
	Score       *int64
	Description *string
}

// Record renders the listing as an ordered record with every canonical key
// present.
func (l *Listing) Record() *jsonval.Object {
	rec := jsonval.NewObject()

	price := jsonval.NewObject()
	price.Set("value", intValue(l.Price.Value))

	address := jsonval.NewObject()
	address.Set("streetAddress", textValue(l.Address.StreetAddress))
	address.Set("city", textValue(l.Address.City))
	address.Set("state", textValue(l.Address.State))
	address.Set("zipcode", textValue(l.Address.Zipcode))

	lot := jsonval.NewObject()
	lot.Set("lotSize", intValue(l.LotSize))

	tax := jsonval.NewObject()
	tax.Set("taxAssessedValue", intValue(l.TaxAssessment.AssessedValue))
	tax.Set("taxAssessmentYear", textValue(l.TaxAssessment.AssessmentYear))

	schools := make([]jsonval.Value, 0, len(l.Schools))
	for _, s := range l.Schools {
		school := jsonval.NewObject()
		school.Set("name", textValue(s.Name))
		school.Set("rating", intValue(s.Rating))
		school.Set("distance", floatValue(s.Distance))
		schools = append(schools, jsonval.ObjectOf(school))
	}

	walkScore := jsonval.Null()
	if l.WalkScore != nil {
		ws := jsonval.NewObject()
		ws.Set("walkscore", intValue(l.WalkScore.Score))
		ws.Set("description", textValue(l.WalkScore.Description))
		walkScore = jsonval.ObjectOf(ws)
	}

	rec.Set("zpid", jsonval.Int(l.ZPID))
	rec.Set("price", jsonval.ObjectOf(price))
	rec.Set("address", jsonval.ObjectOf(address))
	rec.Set("bedrooms", intValue(l.Bedrooms))
	rec.Set("bathrooms", floatValue(l.Bathrooms))
	rec.Set("livingArea", intValue(l.LivingArea))
	rec.Set("yearBuilt", intValue(l.YearBuilt))
	rec.Set("lotSizeWithUnit", jsonval.ObjectOf(lot))
	rec.Set("propertyType", textValue(l.PropertyType))
	rec.Set("taxAssessment", jsonval.ObjectOf(tax))
	rec.Set("priceHistory", jsonval.ArrayOf(l.PriceHistory))
	rec.Set("taxHistory", jsonval.ArrayOf(l.TaxHistory))
	rec.Set("schools", jsonval.ArrayOf(schools))
	rec.Set("walkScore", walkScore)
	rec.Set("resoFacts", objectOrEmpty(l.ResoFacts))
	rec.Set("attributionInfo", objectOrEmpty(l.AttributionInfo))
	rec.Set("photos", jsonval.ArrayOf(l.Photos))
	rec.Set("url", textValue(l.URL))

	return rec
}

func intValue(p *int64) jsonval.Value {
	if p == nil {
		return jsonval.Null()
	}

	return jsonval.Int(*p)
}

func floatValue(p *float64) jsonval.Value {
	if p == nil {
		return jsonval.Null()
	}

	return jsonval.Float(*p)
}

func textValue(p *string) jsonval.Value {
	if p == nil {
		return jsonval.Null()
	}

	return jsonval.String(*p)
}

func objectOrEmpty(o *jsonval.Object) jsonval.Value {
	if o == nil {
		return jsonval.ObjectOf(jsonval.NewObject())
	}

	return jsonval.ObjectOf(o)
}
