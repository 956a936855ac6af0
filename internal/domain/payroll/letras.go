package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/recibospro/recibos-api/internal/domain"
)

// ErrMontoFueraDeRango indica que el monto excede el máximo expresable en letras.
// El esquema de bandas llega hasta 999.999 (no hay banda "millón"); extenderlo
// requiere agregar la banda y su concordancia (UN MILLÓN / N MILLONES).
var ErrMontoFueraDeRango = fmt.Errorf("%w: el monto en letras admite hasta 999.999,99", domain.ErrInvalidInput)

const maxEnteros = 1_000_000

// NumeroALetras convierte un monto no negativo en su expresión legal en
// castellano para el renglón "SON PESOS ..." del recibo, con concordancia
// singular/plural independiente para la moneda y los centavos:
//
//	0.00    -> "CERO PESOS "
//	1.00    -> "UN PESO "
//	1500.50 -> "UN MIL QUINIENTOS PESOS CON CINCUENTA CENTAVOS"
//
// Cuando no hay centavos el resultado conserva el espacio final; las plantillas
// concatenan el renglón tal cual y ese byte forma parte del formato histórico.
func NumeroALetras(monto decimal.Decimal) (string, error) {
	if monto.IsNegative() {
		return "", fmt.Errorf("%w: monto negativo", domain.ErrInvalidInput)
	}

	// Total en centavos con redondeo a 2 decimales; evita el drift de separar
	// parte entera y fracción por floats.
	totalCentavos := monto.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	enteros := totalCentavos / 100
	centavos := totalCentavos % 100

	if enteros >= maxEnteros {
		return "", ErrMontoFueraDeRango
	}

	var letras string
	switch {
	case enteros == 0:
		letras = "CERO"
	default:
		letras = miles(int(enteros))
	}

	moneda := "PESOS"
	if enteros == 1 {
		moneda = "PESO"
	}

	sufijo := ""
	if centavos > 0 {
		if centavos == 1 {
			sufijo = "CON UN CENTAVO"
		} else {
			sufijo = "CON " + decenas(int(centavos)) + " CENTAVOS"
		}
	}

	// El espacio final cuando no hay centavos es intencional (formato histórico).
	return letras + " " + moneda + " " + sufijo, nil
}

// miles expresa 0..999999. "UN MIL" exactamente para mil unidades de mil;
// el conteo de miles mayor recurre a la banda de centenas.
func miles(n int) string {
	if n < 1000 {
		return centenas(n)
	}
	cantidadMiles := n / 1000
	resto := n % 1000

	var partes []string
	if cantidadMiles == 1 {
		partes = append(partes, "UN MIL")
	} else {
		partes = append(partes, centenas(cantidadMiles), "MIL")
	}
	if resto > 0 {
		partes = append(partes, centenas(resto))
	}
	return strings.Join(partes, " ")
}

// centenas expresa 0..999. "CIEN" exacto en 100; 200..900 son formas léxicas
// irregulares (DOSCIENTOS, QUINIENTOS, ...).
func centenas(n int) string {
	if n == 100 {
		return "CIEN"
	}
	c := n / 100
	resto := n % 100
	if c == 0 {
		return decenas(resto)
	}
	palabra := [10]string{
		"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS",
		"QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
	}[c]
	if resto == 0 {
		return palabra
	}
	return palabra + " " + decenas(resto)
}

// decenas expresa 0..99. Irregulares 10..15, prefijos DIECI/VEINTI y
// composición "X Y Z" de 30 en adelante.
func decenas(n int) string {
	if n < 10 {
		return unidades(n)
	}
	d := n / 10
	u := n % 10
	switch d {
	case 1:
		switch u {
		case 0:
			return "DIEZ"
		case 1:
			return "ONCE"
		case 2:
			return "DOCE"
		case 3:
			return "TRECE"
		case 4:
			return "CATORCE"
		case 5:
			return "QUINCE"
		default:
			return "DIECI" + unidades(u)
		}
	case 2:
		if u == 0 {
			return "VEINTE"
		}
		return "VEINTI" + unidades(u)
	default:
		base := [10]string{
			"", "", "", "TREINTA", "CUARENTA", "CINCUENTA",
			"SESENTA", "SETENTA", "OCHENTA", "NOVENTA",
		}[d]
		if u == 0 {
			return base
		}
		return base + " Y " + unidades(u)
	}
}

// unidades expresa 0..9; el cero es cadena vacía para componer bandas superiores.
func unidades(n int) string {
	return [10]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}[n]
}
