package demos

const colorFragmentSrc = `
//shader:fragment
#version 410

in vec4 fragment_color;

out vec4 out_color;

void main()
{
    out_color = fragment_color;
}
`

const plainVertexSrc = `
//shader:vertex
#version 410

in vec4 position;
in vec4 color;

out vec4 fragment_color;

void main()
{
    gl_Position = position;
    fragment_color = color;
}
`

const offsetVertexSrc = `
//shader:vertex
#version 410

in vec4 position;
in vec4 color;

uniform vec3 offset;

out vec4 fragment_color;

void main()
{
    gl_Position = position + vec4(offset, 0.0);
    fragment_color = color;
}
`

const rotationVertexSrc = `
//shader:vertex
#version 410

in vec4 position;
in vec4 color;

uniform mat4 rotation_matrix;
uniform vec3 offset;

out vec4 fragment_color;

void main()
{
    gl_Position = rotation_matrix * position + vec4(offset, 0.0);
    fragment_color = color;
}
`

const perspectiveVertexSrc = `
//shader:vertex
#version 410

in vec4 position;
in vec4 color;

uniform mat4 rotation_matrix;
uniform mat4 perspective_matrix;
uniform vec3 offset;

out vec4 fragment_color;

void main()
{
    vec4 camera_position = rotation_matrix * position + vec4(offset, 0.0);
    gl_Position = perspective_matrix * camera_position;
    fragment_color = color;
}
`

const cubeVertexSrc = `
//shader:vertex
#version 410

in vec4 position;
in vec4 color;

uniform mat4 y_rotation_matrix;
uniform mat4 z_rotation_matrix;
uniform mat4 perspective_matrix;
uniform vec3 offset;
uniform vec3 camera_offset;

out vec4 fragment_color;

void main()
{
    vec4 rotated = y_rotation_matrix * (z_rotation_matrix * position);
    vec4 camera_position = rotated + vec4(offset, 0.0) + vec4(camera_offset, 0.0);
    gl_Position = perspective_matrix * camera_position;
    fragment_color = color;
}
`

const (
	staticTriangleSrc    = plainVertexSrc + colorFragmentSrc
	offsetSrc            = offsetVertexSrc + colorFragmentSrc
	rotatedSquareSrc     = rotationVertexSrc + colorFragmentSrc
	perspectiveSquareSrc = perspectiveVertexSrc + colorFragmentSrc
	perspectiveCubeSrc   = cubeVertexSrc + colorFragmentSrc
)
