package normalizer

import (
	"errors"

	"zexplorer/internal/jsonval"
	"zexplorer/internal/models"
)

// ErrMissingIdentifier is returned when no identifier alias yields an integer.
var ErrMissingIdentifier = errors.New("listing has no resolvable zpid")

// Field resolution chains. Order matters: the first present alias wins and
// is coerced afterwards, so a malformed first alias yields null.
var (
	zpidField = firstOf(field("zpid"), field("id"), field("zpid_raw"))

	priceField = firstOf(
		scalar(field("price")),
		nested("price.value"),
		field("priceValue"),
		field("listPrice"),
	)

	streetField  = firstOf(nested("address.street"), nested("address.streetAddress"), field("streetAddress"))
	cityField    = firstOf(nested("address.city"), field("city"))
	stateField   = firstOf(nested("address.state"), field("state"))
	zipcodeField = firstOf(nested("address.zipcode"), nested("address.zip"), field("zipcode"))

	bedroomsField     = firstOf(field("bedrooms"), field("beds"))
	bathroomsField    = firstOf(field("bathrooms"), field("baths"))
	livingAreaField   = firstOf(field("livingArea"), field("area"), field("living_area"), field("sqft"))
	yearBuiltField    = firstOf(field("yearBuilt"), field("year_built"))
	lotSizeField      = firstOf(nested("lotSizeWithUnit.lotSize"), nested("lotSizeWithUnit.value"))
	propertyTypeField = firstOf(field("propertyType"), field("property_type"))

	taxValueField = firstOf(
		nested("taxAssessment.taxAssessedValue"),
		field("tax_assessed_value"),
		field("taxAssessedValue"),
	)
	taxYearField = firstOf(
		nested("taxAssessment.taxAssessmentYear"),
		field("taxAssessmentYear"),
		field("tax_assessment_year"),
	)

	walkScoreField = firstOf(field("walkScore"), field("walkscore"))
	resoFactsField = firstOf(field("resoFacts"), field("features"))

	schoolNameField   = firstOf(field("name"), field("schoolName"))
	schoolRatingField = firstOf(field("rating"), field("score"))
	walkScoreScore    = firstOf(field("walkscore"), field("score"))
)

// Transformer maps one raw record onto the canonical listing.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts a raw record into a canonical listing. Every field
// degrades to null or empty on bad input; only a missing identifier is an
// error.
func (t *Transformer) Transform(raw *jsonval.Object) (*models.Listing, error) {
	zpid, ok := jsonval.ToInt(zpidField(raw))
	if !ok {
		return nil, ErrMissingIdentifier
	}

	return &models.Listing{
		ZPID:  zpid,
		Price: models.Price{Value: intPtr(priceField(raw))},
		Address: models.Address{
			StreetAddress: textPtr(streetField(raw)),
			City:          textPtr(cityField(raw)),
			State:         textPtr(stateField(raw)),
			Zipcode:       textPtr(zipcodeField(raw)),
		},
		Bedrooms:     intPtr(bedroomsField(raw)),
		Bathrooms:    floatPtr(bathroomsField(raw)),
		LivingArea:   intPtr(livingAreaField(raw)),
		YearBuilt:    intPtr(yearBuiltField(raw)),
		LotSize:      intPtr(lotSizeField(raw)),
		PropertyType: textPtr(propertyTypeField(raw)),
		TaxAssessment: models.TaxAssessment{
			AssessedValue:  intPtr(taxValueField(raw)),
			AssessmentYear: textPtr(taxYearField(raw)),
		},
		PriceHistory:    arrayOrEmpty(raw.At("priceHistory")),
		TaxHistory:      arrayOrEmpty(raw.At("taxHistory")),
		Photos:          arrayOrEmpty(raw.At("photos")),
		Schools:         t.schools(raw.At("schools")),
		WalkScore:       t.walkScore(walkScoreField(raw)),
		ResoFacts:       objectOrNil(resoFactsField(raw)),
		AttributionInfo: objectOrNil(raw.At("attributionInfo")),
		URL:             textPtr(raw.At("url")),
	}, nil
}

// schools keeps object entries only; anything but an array yields none.
func (t *Transformer) schools(v jsonval.Value) []models.School {
	items, ok := v.AsArray()
	if !ok {
		return []models.School{}
	}

	out := make([]models.School, 0, len(items))

	for _, item := range items {
		s, ok := item.AsObject()
		if !ok {
			continue
		}

		out = append(out, models.School{
			Name:     textPtr(schoolNameField(s)),
			Rating:   intPtr(schoolRatingField(s)),
			Distance: floatPtr(s.At("distance")),
		})
	}

	return out
}

// walkScore accepts either {walkscore|score, description} or a bare score.
// Any other present value keeps the field with a null score.
func (t *Transformer) walkScore(v jsonval.Value) *models.WalkScore {
	if obj, ok := v.AsObject(); ok {
		score := intPtr(walkScoreScore(obj))
		description := textPtr(obj.At("description"))

		if score == nil && description == nil {
			return nil
		}

		return &models.WalkScore{Score: score, Description: description}
	}

	if v.IsNull() {
		return nil
	}

	return &models.WalkScore{Score: intPtr(v)}
}
