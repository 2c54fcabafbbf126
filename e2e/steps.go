package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Fixture steps
	ctx.Step(`^an address exists$`, tc.anAddressExists)
	ctx.Step(`^a person "([^"]*)" exists at that address$`, tc.aPersonExistsAtThatAddress)
	ctx.Step(`^I save the returned address id$`, tc.saveAddressID)
	ctx.Step(`^I save the returned person id$`, tc.savePersonID)

	// Request steps
	ctx.Step(`^I POST to "([^"]*)" with body:$`, tc.postWithBody)
	ctx.Step(`^I POST to "([^"]*)" with the raw body "([^"]*)"$`, tc.postWithRawBody)
	ctx.Step(`^I GET "([^"]*)"$`, tc.get)
	ctx.Step(`^I PATCH "([^"]*)" with body:$`, tc.patchWithBody)
	ctx.Step(`^I DELETE "([^"]*)"$`, tc.del)
	ctx.Step(`^I GET the person$`, tc.getPerson)
	ctx.Step(`^I GET the person's address$`, tc.getPersonAddress)
	ctx.Step(`^I PATCH the person with body:$`, tc.patchPerson)
	ctx.Step(`^I DELETE the person$`, tc.deletePerson)
	ctx.Step(`^I GET the address$`, tc.getAddress)
	ctx.Step(`^I PATCH the address with body:$`, tc.patchAddress)
	ctx.Step(`^I DELETE the address$`, tc.deleteAddress)

	// Assertion steps
	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.responseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, tc.responseFieldShouldEqual)
	ctx.Step(`^the response body should be empty$`, tc.responseBodyShouldBeEmpty)
	ctx.Step(`^the response list should have (\d+) items?$`, tc.responseListShouldHaveItems)
}

func (tc *TestContext) anAddressExists() error {
	if err := tc.Do(http.MethodPost, "/address/", map[string]any{
		"logradouro": "Rua A",
		"numero":     10,
		"estado":     "SP",
		"cidade":     "São Paulo",
		"bairro":     "Centro",
	}); err != nil {
		return err
	}
	if tc.LastResponse.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected address fixture to be created, got %d: %s",
			tc.LastResponse.StatusCode, tc.LastResponseBody)
	}
	return tc.saveAddressID()
}

func (tc *TestContext) aPersonExistsAtThatAddress(name string) error {
	if err := tc.Do(http.MethodPost, "/persons/", map[string]any{
		"name":       name,
		"address_id": tc.AddressID,
	}); err != nil {
		return err
	}
	if tc.LastResponse.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected person fixture to be created, got %d: %s",
			tc.LastResponse.StatusCode, tc.LastResponseBody)
	}
	return tc.savePersonID()
}

func (tc *TestContext) saveAddressID() error {
	id, err := tc.GetResponseID("address_id")
	if err != nil {
		return err
	}
	tc.AddressID = id
	return nil
}

func (tc *TestContext) savePersonID() error {
	id, err := tc.GetResponseID("person_id")
	if err != nil {
		return err
	}
	tc.PersonID = id
	return nil
}

func (tc *TestContext) postWithBody(path string, body *godog.DocString) error {
	return tc.DoRaw(http.MethodPost, path, body.Content)
}

func (tc *TestContext) postWithRawBody(path, body string) error {
	return tc.DoRaw(http.MethodPost, path, body)
}

func (tc *TestContext) get(path string) error {
	return tc.Do(http.MethodGet, path, nil)
}

func (tc *TestContext) patchWithBody(path string, body *godog.DocString) error {
	return tc.DoRaw(http.MethodPatch, path, body.Content)
}

func (tc *TestContext) del(path string) error {
	return tc.Do(http.MethodDelete, path, nil)
}

func (tc *TestContext) getPerson() error {
	return tc.Do(http.MethodGet, fmt.Sprintf("/persons/%d", tc.PersonID), nil)
}

func (tc *TestContext) getPersonAddress() error {
	return tc.Do(http.MethodGet, fmt.Sprintf("/persons/%d/address", tc.PersonID), nil)
}

func (tc *TestContext) patchPerson(body *godog.DocString) error {
	return tc.DoRaw(http.MethodPatch, fmt.Sprintf("/persons/%d", tc.PersonID), body.Content)
}

func (tc *TestContext) deletePerson() error {
	return tc.Do(http.MethodDelete, fmt.Sprintf("/persons/%d", tc.PersonID), nil)
}

func (tc *TestContext) getAddress() error {
	return tc.Do(http.MethodGet, fmt.Sprintf("/address/%d", tc.AddressID), nil)
}

func (tc *TestContext) patchAddress(body *godog.DocString) error {
	return tc.DoRaw(http.MethodPatch, fmt.Sprintf("/address/%d", tc.AddressID), body.Content)
}

func (tc *TestContext) deleteAddress() error {
	return tc.Do(http.MethodDelete, fmt.Sprintf("/address/%d", tc.AddressID), nil)
}

func (tc *TestContext) responseStatusShouldBe(expected int) error {
	if tc.LastResponse.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s",
			expected, tc.LastResponse.StatusCode, tc.LastResponseBody)
	}
	return nil
}

func (tc *TestContext) responseShouldContain(expected string) error {
	if !strings.Contains(string(tc.LastResponseBody), expected) {
		return fmt.Errorf("expected response to contain %q, got: %s", expected, tc.LastResponseBody)
	}
	return nil
}

func (tc *TestContext) responseFieldShouldEqual(field, expected string) error {
	value, err := tc.GetResponseField(field)
	if err != nil {
		return err
	}
	// Numbers arrive as float64; render without a decimal point when whole.
	var actual string
	if number, ok := value.(float64); ok && number == float64(int64(number)) {
		actual = fmt.Sprintf("%d", int64(number))
	} else {
		actual = fmt.Sprintf("%v", value)
	}
	if actual != expected {
		return fmt.Errorf("expected field %q to equal %q, got %q", field, expected, actual)
	}
	return nil
}

func (tc *TestContext) responseBodyShouldBeEmpty() error {
	if len(tc.LastResponseBody) != 0 {
		return fmt.Errorf("expected empty body, got: %s", tc.LastResponseBody)
	}
	return nil
}

func (tc *TestContext) responseListShouldHaveItems(count int) error {
	var list []any
	if err := json.Unmarshal(tc.LastResponseBody, &list); err != nil {
		return fmt.Errorf("failed to parse response as a list: %w: %s", err, tc.LastResponseBody)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items, got %d: %s", count, len(list), tc.LastResponseBody)
	}
	return nil
}
