package i18n

var en = map[string]string{
	"invalid_type":                "Expected {expected}, received {received}",
	"invalid_type.required":       "Required",
	"too_small":                   "Value is too small",
	"too_small.string":            "String must contain at least {minimum} character(s)",
	"too_small.string.exact":      "String must contain exactly {minimum} character(s)",
	"too_small.number":            "Number must be greater than or equal to {minimum}",
	"too_small.number.exclusive":  "Number must be greater than {minimum}",
	"too_small.array":             "Array must contain at least {minimum} element(s)",
	"too_small.array.exact":       "Array must contain exactly {minimum} element(s)",
	"too_small.set":               "Set must contain at least {minimum} element(s)",
	"too_small.set.exact":         "Set must contain exactly {minimum} element(s)",
	"too_small.date":              "Date must be greater than or equal to {minimum}",
	"too_large":                   "Value is too large",
	"too_large.string":            "String must contain at most {maximum} character(s)",
	"too_large.string.exact":      "String must contain exactly {maximum} character(s)",
	"too_large.number":            "Number must be less than or equal to {maximum}",
	"too_large.number.exclusive":  "Number must be less than {maximum}",
	"too_large.array":             "Array must contain at most {maximum} element(s)",
	"too_large.array.exact":       "Array must contain exactly {maximum} element(s)",
	"too_large.set":               "Set must contain at most {maximum} element(s)",
	"too_large.set.exact":         "Set must contain exactly {maximum} element(s)",
	"too_large.date":              "Date must be smaller than or equal to {maximum}",
	"invalid_string":              "Invalid string",
	"invalid_string.email":        "Invalid email",
	"invalid_string.url":          "Invalid url",
	"invalid_string.uuid":         "Invalid uuid",
	"invalid_string.regex":        "Invalid",
	"invalid_string.startsWith":   `Invalid input: must start with "{startsWith}"`,
	"invalid_string.endsWith":     `Invalid input: must end with "{endsWith}"`,
	"invalid_string.includes":     `Invalid input: must include "{includes}"`,
	"custom":                      "Invalid input",
	"unrecognized_keys":           "Unrecognized key(s) in object: {keys}",
	"invalid_enum_value":          "Invalid enum value. Expected {options}, received '{received}'",
	"invalid_literal":             "Invalid literal value, expected {expected}",
	"invalid_union":               "Invalid input",
	"invalid_union_discriminator": "Invalid discriminator value. Expected {options}",
	"not_multiple_of":             "Number must be a multiple of {multipleOf}",
	"not_finite":                  "Number must be finite",
	"parse_error":                 "Parse error",
	"duplicate_key":               "Duplicate key {key}",
}

var id = map[string]string{
	"invalid_type":                "Diharapkan {expected}, diterima {received}",
	"invalid_type.required":       "Wajib diisi",
	"too_small":                   "Nilai terlalu kecil",
	"too_small.string":            "String minimal harus berisi {minimum} karakter",
	"too_small.string.exact":      "String harus berisi tepat {minimum} karakter",
	"too_small.number":            "Angka harus lebih besar dari atau sama dengan {minimum}",
	"too_small.number.exclusive":  "Angka harus lebih besar dari {minimum}",
	"too_small.array":             "Array minimal harus berisi {minimum} elemen",
	"too_small.array.exact":       "Array harus berisi tepat {minimum} elemen",
	"too_small.set":               "Set minimal harus berisi {minimum} elemen",
	"too_small.set.exact":         "Set harus berisi tepat {minimum} elemen",
	"too_small.date":              "Tanggal harus sama dengan atau setelah {minimum}",
	"too_large":                   "Nilai terlalu besar",
	"too_large.string":            "String maksimal berisi {maximum} karakter",
	"too_large.string.exact":      "String harus berisi tepat {maximum} karakter",
	"too_large.number":            "Angka harus lebih kecil dari atau sama dengan {maximum}",
	"too_large.number.exclusive":  "Angka harus lebih kecil dari {maximum}",
	"too_large.array":             "Array maksimal berisi {maximum} elemen",
	"too_large.array.exact":       "Array harus berisi tepat {maximum} elemen",
	"too_large.set":               "Set maksimal berisi {maximum} elemen",
	"too_large.set.exact":         "Set harus berisi tepat {maximum} elemen",
	"too_large.date":              "Tanggal harus sama dengan atau sebelum {maximum}",
	"invalid_string":              "String tidak valid",
	"invalid_string.email":        "Email tidak valid",
	"invalid_string.url":          "URL tidak valid",
	"invalid_string.uuid":         "UUID tidak valid",
	"invalid_string.regex":        "Format tidak valid",
	"invalid_string.startsWith":   `Input tidak valid: harus diawali "{startsWith}"`,
	"invalid_string.endsWith":     `Input tidak valid: harus diakhiri "{endsWith}"`,
	"invalid_string.includes":     `Input tidak valid: harus mengandung "{includes}"`,
	"custom":                      "Input tidak valid",
	"unrecognized_keys":           "Kunci tidak dikenal pada objek: {keys}",
	"invalid_enum_value":          "Nilai enum tidak valid. Diharapkan {options}, diterima '{received}'",
	"invalid_literal":             "Nilai literal tidak valid, diharapkan {expected}",
	"invalid_union":               "Input tidak valid",
	"invalid_union_discriminator": "Nilai diskriminator tidak valid. Diharapkan {options}",
	"not_multiple_of":             "Angka harus kelipatan {multipleOf}",
	"not_finite":                  "Angka harus berhingga",
	"parse_error":                 "Kesalahan parsing",
	"duplicate_key":               "Kunci duplikat {key}",
}

var ja = map[string]string{
	"invalid_type":                "{expected} を期待しましたが {received} を受け取りました",
	"invalid_type.required":       "必須です",
	"too_small":                   "小さすぎます",
	"too_small.string":            "{minimum} 文字以上で入力してください",
	"too_small.string.exact":      "{minimum} 文字で入力してください",
	"too_small.number":            "{minimum} 以上の数値を入力してください",
	"too_small.number.exclusive":  "{minimum} より大きい数値を入力してください",
	"too_small.array":             "{minimum} 個以上の要素が必要です",
	"too_small.array.exact":       "{minimum} 個の要素が必要です",
	"too_small.set":               "{minimum} 個以上の要素が必要です",
	"too_small.set.exact":         "{minimum} 個の要素が必要です",
	"too_small.date":              "{minimum} 以降の日付を入力してください",
	"too_large":                   "大きすぎます",
	"too_large.string":            "{maximum} 文字以下で入力してください",
	"too_large.string.exact":      "{maximum} 文字で入力してください",
	"too_large.number":            "{maximum} 以下の数値を入力してください",
	"too_large.number.exclusive":  "{maximum} より小さい数値を入力してください",
	"too_large.array":             "{maximum} 個以下の要素にしてください",
	"too_large.array.exact":       "{maximum} 個の要素が必要です",
	"too_large.set":               "{maximum} 個以下の要素にしてください",
	"too_large.set.exact":         "{maximum} 個の要素が必要です",
	"too_large.date":              "{maximum} 以前の日付を入力してください",
	"invalid_string":              "文字列が不正です",
	"invalid_string.email":        "メールアドレスの形式が不正です",
	"invalid_string.url":          "URL の形式が不正です",
	"invalid_string.uuid":         "UUID の形式が不正です",
	"invalid_string.regex":        "形式が不正です",
	"invalid_string.startsWith":   `"{startsWith}" で始まる必要があります`,
	"invalid_string.endsWith":     `"{endsWith}" で終わる必要があります`,
	"invalid_string.includes":     `"{includes}" を含む必要があります`,
	"custom":                      "入力が不正です",
	"unrecognized_keys":           "未知のキーです: {keys}",
	"invalid_enum_value":          "列挙値が不正です。{options} のいずれかを期待しましたが '{received}' を受け取りました",
	"invalid_literal":             "リテラル値が不正です。{expected} を期待しました",
	"invalid_union":               "入力が不正です",
	"invalid_union_discriminator": "判別子の値が不正です。{options} のいずれかを期待しました",
	"not_multiple_of":             "{multipleOf} の倍数である必要があります",
	"not_finite":                  "有限の数値である必要があります",
	"parse_error":                 "解析エラー",
	"duplicate_key":               "キーが重複しています: {key}",
}
