package client

import (
	"reflect"

	json "github.com/goccy/go-json"

	"hoteladmin/errors"
)

// El API del hotel no es consistente con sus sobres de respuesta: algunos
// endpoints regresan {data: T}, otros {results: T[]} y otros el valor a
// secas. unwrap normaliza las tres formas en un solo punto de decodificación.
// Para destinos de lista, un cuerpo sin data, sin results y sin arreglo se
// normaliza a lista vacía en lugar de fallar.
func unwrap(body []byte, target interface{}) error {
	if len(body) == 0 {
		return emptyList(target)
	}

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Results json.RawMessage `json:"results"`
	}

	payload := body
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case len(envelope.Data) > 0 && string(envelope.Data) != "null":
			payload = envelope.Data
		case len(envelope.Results) > 0 && string(envelope.Results) != "null":
			payload = envelope.Results
		}
	}

	if err := json.Unmarshal(payload, target); err != nil {
		if emptyList(target) == nil {
			return nil
		}
		return errors.NewAppError(errors.ErrCodeAPIDecode, "Respuesta inesperada del API del hotel", err)
	}
	return nil
}

// emptyList deja el destino como lista vacía cuando es un slice; para
// cualquier otro destino regresa error para que la forma inesperada truene
// fuerte en lugar de coaccionarse en silencio.
func emptyList(target interface{}) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return errors.NewAppError(errors.ErrCodeAPIDecode, "Destino de decodificación inválido", nil)
	}
	elem := value.Elem()
	if elem.Kind() != reflect.Slice {
		return errors.NewAppError(errors.ErrCodeAPIDecode, "Respuesta vacía del API del hotel", nil)
	}
	elem.Set(reflect.MakeSlice(elem.Type(), 0, 0))
	return nil
}
